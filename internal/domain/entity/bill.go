package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bill is a recurring or upcoming obligation recorded against an account,
// as opposed to an Expense which has already happened.
type Bill struct {
	ID             uuid.UUID // The unique ID for this bill record.
	AccountID      uuid.UUID // Links this bill to the Account that owns it.
	Description    string    // Free-form description of the bill.
	Value          int64     // Amount in cents.
	ExpirationDate time.Time // The day the bill is due.
	CreatedAt      time.Time // Timestamp of when this record was created.
}
