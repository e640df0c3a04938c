// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account plus a freshly issued access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for account-related business
// operations. This is the contract the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new account and issues its first access token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetUser loads the account behind an authenticated identity.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
