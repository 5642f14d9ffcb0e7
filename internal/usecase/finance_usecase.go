package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// AddExpenseInput defines the data required to record an expense.
type AddExpenseInput struct {
	AccountID   uuid.UUID
	Description string
	Value       int64 // Amount in cents.
	Date        time.Time
}

// AddBillInput defines the data required to record a bill.
type AddBillInput struct {
	AccountID      uuid.UUID
	Description    string
	Value          int64 // Amount in cents.
	ExpirationDate time.Time
}

// AddExpenseOutput returns the recorded expense and the updated monthly total.
type AddExpenseOutput struct {
	Expense      *entity.Expense
	MonthlyTotal int64
}

// FinanceUsecase defines the interface for recording financial events against an account.
type FinanceUsecase interface {
	// AddExpense records an expense and rolls it into the account's monthly
	// aggregate within a single transaction.
	AddExpense(ctx context.Context, input *AddExpenseInput) (*AddExpenseOutput, error)

	// AddBill records a bill.
	AddBill(ctx context.Context, input *AddBillInput) (*entity.Bill, error)
}
