package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FinanceHandler holds dependencies for expense and bill handlers.
type FinanceHandler struct {
	uc     usecase.FinanceUsecase
	logger *slog.Logger
}

// NewFinanceHandler is the constructor for FinanceHandler, injected by Fx.
func NewFinanceHandler(uc usecase.FinanceUsecase, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{
		uc:     uc,
		logger: logger,
	}
}

// accountIDFromContext reads the account ID set by the auth middleware.
func accountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get("accountID").(uuid.UUID)
	return accountID, ok
}

type addExpenseRequest struct {
	Description string `json:"description" validate:"required"`
	Value       int64  `json:"value" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

type addExpenseResponse struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Value        int64  `json:"value"`
	Date         string `json:"date"`
	MonthlyTotal int64  `json:"monthlyTotal"`
}

// AddExpense records an expense for the authenticated account.
func (h *FinanceHandler) AddExpense(c echo.Context) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	var req addExpenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid expense input")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid expense date")
	}

	output, err := h.uc.AddExpense(c.Request().Context(), &usecase.AddExpenseInput{
		AccountID:   accountID,
		Description: req.Description,
		Value:       req.Value,
		Date:        date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, addExpenseResponse{
		ID:           output.Expense.ID.String(),
		Description:  output.Expense.Description,
		Value:        output.Expense.Value,
		Date:         output.Expense.Date.Format("2006-01-02"),
		MonthlyTotal: output.MonthlyTotal,
	}, "Expense recorded successfully")
}

type addBillRequest struct {
	Description    string `json:"description" validate:"required"`
	Value          int64  `json:"value" validate:"required,gt=0"`
	ExpirationDate string `json:"expirationDate" validate:"required,datetime=2006-01-02"`
}

type addBillResponse struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Value          int64  `json:"value"`
	ExpirationDate string `json:"expirationDate"`
}

// AddBill records a bill for the authenticated account.
func (h *FinanceHandler) AddBill(c echo.Context) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	var req addBillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bill input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid bill input")
	}

	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid bill expiration date")
	}

	bill, err := h.uc.AddBill(c.Request().Context(), &usecase.AddBillInput{
		AccountID:      accountID,
		Description:    req.Description,
		Value:          req.Value,
		ExpirationDate: expirationDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, addBillResponse{
		ID:             bill.ID.String(),
		Description:    bill.Description,
		Value:          bill.Value,
		ExpirationDate: bill.ExpirationDate.Format("2006-01-02"),
	}, "Bill recorded successfully")
}
