package usecase

import (
	"context"

	"snapgram/internal/domain/entity"
)

// SignInInput defines the credentials for signing in.
type SignInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SessionUsecase defines the session operations. Both are pass-throughs to the account service.
type SessionUsecase interface {
	SignIn(ctx context.Context, input *SignInInput) (*entity.Session, error)
	SignOut(ctx context.Context) error
}
