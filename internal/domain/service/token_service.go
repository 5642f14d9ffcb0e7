package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims defines the custom claims carried by an access token.
type AccessTokenClaims struct {
	AccountID uuid.UUID
	Email     string
	jwt.RegisteredClaims
}

// AccessTokenService defines the interface for minting and checking access tokens.
// This abstracts the details of token creation from the use cases.
type AccessTokenService interface {
	// Generate creates a signed access token bound to the given account
	// identity. Signing failure is returned as an error, never as an empty token.
	Generate(id uuid.UUID, email string) (string, error)

	// Parse verifies a token string's signature and expiry and returns its claims.
	Parse(token string) (*AccessTokenClaims, error)
}
