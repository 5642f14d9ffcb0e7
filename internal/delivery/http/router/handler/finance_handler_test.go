package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	mockUC "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinanceHandler_AddExpense_Success(t *testing.T) {
	uc := mockUC.NewMockFinanceUsecase(t)
	h := NewFinanceHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accountID := uuid.New()
	expenseID := uuid.New()

	uc.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("*usecase.AddExpenseInput")).
		Run(func(ctx context.Context, input *usecase.AddExpenseInput) {
			assert.Equal(t, accountID, input.AccountID)
			assert.Equal(t, "Groceries", input.Description)
			assert.Equal(t, int64(4250), input.Value)
		}).
		Return(&usecase.AddExpenseOutput{
			Expense: &entity.Expense{
				ID:          expenseID,
				AccountID:   accountID,
				Description: "Groceries",
				Value:       4250,
				Date:        time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			},
			MonthlyTotal: 4250,
		}, nil)

	body := `{"description":"Groceries","value":4250,"date":"2026-03-14"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/expenses", body)
	c.Set("accountID", accountID)

	require.NoError(t, h.AddExpense(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), expenseID.String())
	assert.Contains(t, rec.Body.String(), `"monthlyTotal":4250`)
}

func TestFinanceHandler_AddExpense_MissingAccount(t *testing.T) {
	uc := mockUC.NewMockFinanceUsecase(t)
	h := NewFinanceHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// No accountID on the context means the auth middleware never ran.
	body := `{"description":"Groceries","value":4250,"date":"2026-03-14"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/expenses", body)

	require.NoError(t, h.AddExpense(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFinanceHandler_AddExpense_InvalidDate(t *testing.T) {
	uc := mockUC.NewMockFinanceUsecase(t)
	h := NewFinanceHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"description":"Groceries","value":4250,"date":"14/03/2026"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/expenses", body)
	c.Set("accountID", uuid.New())

	require.NoError(t, h.AddExpense(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceHandler_AddBill_Success(t *testing.T) {
	uc := mockUC.NewMockFinanceUsecase(t)
	h := NewFinanceHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accountID := uuid.New()
	billID := uuid.New()

	uc.EXPECT().
		AddBill(mock.Anything, mock.AnythingOfType("*usecase.AddBillInput")).
		Run(func(ctx context.Context, input *usecase.AddBillInput) {
			assert.Equal(t, accountID, input.AccountID)
			assert.Equal(t, "Electricity", input.Description)
		}).
		Return(&entity.Bill{
			ID:             billID,
			AccountID:      accountID,
			Description:    "Electricity",
			Value:          12300,
			ExpirationDate: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
		}, nil)

	body := `{"description":"Electricity","value":12300,"expirationDate":"2026-04-10"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/bills", body)
	c.Set("accountID", accountID)

	require.NoError(t, h.AddBill(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), billID.String())
}

func TestFinanceHandler_AddBill_NegativeValue(t *testing.T) {
	uc := mockUC.NewMockFinanceUsecase(t)
	h := NewFinanceHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"description":"Electricity","value":-5,"expirationDate":"2026-04-10"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/bills", body)
	c.Set("accountID", uuid.New())

	require.NoError(t, h.AddBill(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
