package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single financial event recorded against an account.
// Value is stored in cents to avoid floating-point drift.
type Expense struct {
	ID          uuid.UUID // The unique ID for this expense record.
	AccountID   uuid.UUID // Links this expense to the Account that owns it.
	Description string    // Free-form description of what the expense was for.
	Value       int64     // Amount in cents.
	Date        time.Time // The day the expense occurred.
	CreatedAt   time.Time // Timestamp of when this record was created.
}

// MonthlyExpense is the running total of an account's expenses within one
// calendar month. It is maintained in the same transaction that inserts the
// expense it aggregates.
type MonthlyExpense struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Month     int // 1-12.
	Year      int
	Total     int64 // Sum of expense values in cents.
	UpdatedAt time.Time
}
