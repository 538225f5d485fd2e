// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new instructor account.
type SignupInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	AccessCode string `json:"access_code" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// TokenOutput returns the issued bearer token after signup or login.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Signup registers a new account and returns a bearer token for it.
	Signup(ctx context.Context, input *SignupInput) (*TokenOutput, error)
	// Login verifies credentials and returns a bearer token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	// ResolveCurrentIdentity maps a bearer token back to the account it was
	// issued for.
	ResolveCurrentIdentity(ctx context.Context, token string) (*entity.User, error)
}
