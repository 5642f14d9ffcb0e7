// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity and credential record at the center of the system.
// Every bill and expense is owned by exactly one account.
type Account struct {
	ID          uuid.UUID // Store-assigned identifier, immutable once created.
	Name        string    // The account holder's display name.
	Email       string    // Login identifier; logically unique across accounts.
	Password    string    // The bcrypt-hashed credential. The plaintext is never persisted.
	AccessToken string    // The single live session token. Empty until first sign-up/login; overwritten, never appended.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account.
}
