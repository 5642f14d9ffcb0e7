package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMonthlyExpenseNotFound is returned when no aggregate row exists yet for
// the requested account and month.
var ErrMonthlyExpenseNotFound = errors.New("monthly expense not found")

// ExpenseRepository defines the operations for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense. The store assigns ID and timestamps.
	Create(ctx context.Context, expense *entity.Expense) error
}

// BillRepository defines the operations for bill persistence.
type BillRepository interface {
	// Create persists a new bill. The store assigns ID and timestamps.
	Create(ctx context.Context, bill *entity.Bill) error
}

// MonthlyExpenseRepository maintains the per-account monthly expense totals.
type MonthlyExpenseRepository interface {
	// LoadByMonth retrieves the aggregate row for an account and calendar month.
	LoadByMonth(ctx context.Context, accountID uuid.UUID, month, year int) (*entity.MonthlyExpense, error)

	// Create persists a new aggregate row.
	Create(ctx context.Context, monthly *entity.MonthlyExpense) error

	// Update overwrites an existing aggregate row's total.
	Update(ctx context.Context, monthly *entity.MonthlyExpense) error
}
