// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned by the lookup methods when no account matches.
// "Not found" is a normal domain outcome; callers check it with errors.Is and
// treat any other error as a storage fault.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never the concrete implementation.
type AccountRepository interface {
	// LoadByEmail retrieves a single account by its email address.
	LoadByEmail(ctx context.Context, email string) (*entity.Account, error)

	// LoadByToken retrieves the account currently holding the given access token.
	LoadByToken(ctx context.Context, token string) (*entity.Account, error)

	// Create persists a new account. The store assigns ID and timestamps and
	// writes them back onto the entity.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateAccessToken overwrites the account's current access token.
	UpdateAccessToken(ctx context.Context, accountID uuid.UUID, token string) error
}
