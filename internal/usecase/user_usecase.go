// Package usecase contains the application-specific business rules.
// It orchestrates the gateway to perform domain actions.
package usecase

import (
	"context"

	"snapgram/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	Username string `validate:"required"`
}

// UserUsecase defines the account and profile operations.
type UserUsecase interface {
	// CreateAccount creates the account and then its profile document. A profile
	// failure leaves the account orphaned and fails with AccountSetupIncomplete.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.UserProfile, error)

	// GetCurrentUser resolves the signed-in account to its unique profile.
	GetCurrentUser(ctx context.Context) (*entity.UserProfile, error)

	// GetUserByID loads a profile by document id.
	GetUserByID(ctx context.Context, userID string) (*entity.UserProfile, error)
}
