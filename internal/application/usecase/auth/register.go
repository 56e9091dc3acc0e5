package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/auth"
	"github.com/youapp/youapp-api/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		logger:   log,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type RegisterOutput struct {
	ID       uuid.UUID
	Email    string
	Username string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	for _, identifier := range []string{input.Email, input.Username} {
		_, err := uc.userRepo.FindByIdentifier(ctx, identifier)
		if err == nil {
			return nil, apperror.NewConflict("user", "email or username", identifier)
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			return nil, apperror.NewConflict("user", "email or username", input.Username)
		}
		return nil, err
	}

	return &RegisterOutput{ID: u.ID, Email: u.Email, Username: u.Username}, nil
}
