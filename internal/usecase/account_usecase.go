// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to provision a new account.
// PasswordConfirmation is checked at the delivery boundary; only the password
// itself ever reaches the hasher.
type SignUpInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthenticateInput defines the data required to authenticate with credentials.
type AuthenticateInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the provisioned account's identity with its fresh access token.
type SignUpOutput struct {
	ID          uuid.UUID
	Name        string
	Email       string
	AccessToken string
}

// AccountUsecase defines the interface for account provisioning and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Expected-negative outcomes are zero values with a nil error and callers must
// check them: a nil SignUpOutput means the email is already registered, an
// empty token from Authenticate means unknown email or wrong password, and a
// nil account from AccountByToken means the token does not gate any account.
// A non-nil error always means a collaborator fault (storage, hashing, signing).
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (string, error)
	AccountByToken(ctx context.Context, token string) (*entity.Account, error)
}
