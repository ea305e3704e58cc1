package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseadmin/internal/domain"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, grant *domain.StudentCourse) error {
	err := r.db.WithContext(ctx).Create(grant).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrGrantExists
	}
	return err
}

// Delete is keyed by (studentEmail, courseId). Revoking an absent grant
// fails; a revoke is deliberately not idempotent.
func (r *EnrollmentRepository) Delete(ctx context.Context, courseID uuid.UUID, studentEmail string) error {
	res := r.db.WithContext(ctx).
		Where("course_id = ? AND student_email = ?", courseID, studentEmail).
		Delete(&domain.StudentCourse{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGrantNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, courseID uuid.UUID, studentEmail string, patch domain.GrantPatch) (*domain.StudentCourse, error) {
	var grant domain.StudentCourse
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND student_email = ?", courseID, studentEmail).
		First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrGrantNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.NewEmail != nil && *patch.NewEmail != "" {
		updates["student_email"] = *patch.NewEmail
	}
	if patch.CertificateURL != nil {
		updates["certificate_url"] = *patch.CertificateURL
	}
	if len(updates) == 0 {
		return &grant, nil
	}

	err = r.db.WithContext(ctx).Model(&domain.StudentCourse{}).
		Where("course_id = ? AND student_email = ?", courseID, studentEmail).
		Updates(updates).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrGrantExists
	}
	if err != nil {
		return nil, err
	}

	email := studentEmail
	if patch.NewEmail != nil && *patch.NewEmail != "" {
		email = *patch.NewEmail
	}
	err = r.db.WithContext(ctx).
		Where("course_id = ? AND student_email = ?", courseID, email).
		First(&grant).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *EnrollmentRepository) ListForCourse(ctx context.Context, courseID uuid.UUID) ([]domain.StudentCourse, error) {
	var grants []domain.StudentCourse
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at asc").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}
