package usecase

import (
	"context"

	"github.com/google/uuid"

	"courseadmin/internal/domain"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, grant *domain.StudentCourse) error
	Delete(ctx context.Context, courseID uuid.UUID, studentEmail string) error
	Update(ctx context.Context, courseID uuid.UUID, studentEmail string, patch domain.GrantPatch) (*domain.StudentCourse, error)
	ListForCourse(ctx context.Context, courseID uuid.UUID) ([]domain.StudentCourse, error)
}

type EnrollmentUseCase struct {
	grants EnrollmentRepository
}

func NewEnrollmentUseCase(grants EnrollmentRepository) *EnrollmentUseCase {
	return &EnrollmentUseCase{grants: grants}
}

func (uc *EnrollmentUseCase) Grant(ctx context.Context, courseID uuid.UUID, studentEmail, certificateURL string) (*domain.StudentCourse, error) {
	grant := &domain.StudentCourse{
		StudentEmail:   studentEmail,
		CourseID:       courseID,
		CertificateURL: certificateURL,
	}
	if err := uc.grants.Create(ctx, grant); err != nil {
		return nil, err
	}
	return grant, nil
}

func (uc *EnrollmentUseCase) Revoke(ctx context.Context, courseID uuid.UUID, studentEmail string) error {
	return uc.grants.Delete(ctx, courseID, studentEmail)
}

// Update renames the student email and/or replaces the certificate URL.
// Renaming changes the grant's key; callers still holding the old key
// will get ErrGrantNotFound afterwards.
func (uc *EnrollmentUseCase) Update(ctx context.Context, courseID uuid.UUID, studentEmail string, patch domain.GrantPatch) (*domain.StudentCourse, error) {
	if patch.NewEmail != nil && *patch.NewEmail != "" {
		if err := domain.ValidateEmail(*patch.NewEmail); err != nil {
			return nil, err
		}
	}
	return uc.grants.Update(ctx, courseID, studentEmail, patch)
}

func (uc *EnrollmentUseCase) ListForCourse(ctx context.Context, courseID uuid.UUID) ([]domain.StudentCourse, error) {
	return uc.grants.ListForCourse(ctx, courseID)
}
