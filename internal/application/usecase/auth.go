package usecase

import (
	"context"

	"github.com/google/uuid"

	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/security"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, digest string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	EmailTaken(ctx context.Context, email string, selfID uuid.UUID) (bool, error)
}

type AuthUseCase struct {
	users  UserRepository
	hasher *security.PasswordHasher
	tokens *security.TokenManager
}

func NewAuthUseCase(users UserRepository, hasher *security.PasswordHasher, tokens *security.TokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Login verifies an admin's credentials and issues a session token.
// Unknown email, non-admin account and wrong password all fail with the
// same error so callers cannot enumerate users.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsAdmin {
		return "", domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return uc.tokens.Generate(user.ID, user.Email)
}

func (uc *AuthUseCase) Register(ctx context.Context, email, password string, isAdmin bool) (*domain.User, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	digest, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:    email,
		Password: digest,
		IsAdmin:  isAdmin,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) CurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

// ChangePassword re-verifies the current password before accepting the
// new one. A no-op change is rejected.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.hasher.Compare(user.Password, currentPassword); err != nil {
		return domain.ErrWrongPassword
	}
	if newPassword == currentPassword {
		return domain.ErrSamePassword
	}
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	digest, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, id, digest)
}

func (uc *AuthUseCase) ChangeEmail(ctx context.Context, id uuid.UUID, newEmail string) error {
	if err := domain.ValidateEmail(newEmail); err != nil {
		return err
	}
	taken, err := uc.users.EmailTaken(ctx, newEmail, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailExists
	}
	return uc.users.UpdateEmail(ctx, id, newEmail)
}

func (uc *AuthUseCase) ValidateToken(token string) (security.Claims, error) {
	return uc.tokens.Validate(token)
}
