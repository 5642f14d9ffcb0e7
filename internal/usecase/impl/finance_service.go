package impl

import (
	"context"
	"log/slog"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// financeService implements the FinanceUsecase interface.
type financeService struct {
	txManager repository.TransactionManager
	billRepo  repository.BillRepository
	logger    *slog.Logger
}

// FinanceServiceParams holds dependencies for financeService, injected by Fx.
type FinanceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BillRepo  repository.BillRepository
	Logger    *slog.Logger
}

// NewFinanceService is the constructor for financeService.
func NewFinanceService(params FinanceServiceParams) usecase.FinanceUsecase {
	return &financeService{
		txManager: params.TxManager,
		billRepo:  params.BillRepo,
		logger:    params.Logger,
	}
}

// AddExpense records an expense and rolls it into the account's monthly
// aggregate. Both writes happen inside one database transaction so the
// aggregate can never drift from the expense rows.
func (srv *financeService) AddExpense(ctx context.Context, input *usecase.AddExpenseInput) (*usecase.AddExpenseOutput, error) {
	srv.logger.Debug("Recording expense", slog.Any("accountID", input.AccountID))

	expense := &entity.Expense{
		AccountID:   input.AccountID,
		Description: input.Description,
		Value:       input.Value,
		Date:        input.Date,
	}

	var monthlyTotal int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expenseRepo := repoFactory.ExpenseRepo()
		monthlyRepo := repoFactory.MonthlyExpenseRepo()

		if err := expenseRepo.Create(ctx, expense); err != nil {
			return errors.WithStack(err)
		}

		month := int(input.Date.Month())
		year := input.Date.Year()

		monthly, err := monthlyRepo.LoadByMonth(ctx, input.AccountID, month, year)
		if errors.Is(err, repository.ErrMonthlyExpenseNotFound) {
			monthly = &entity.MonthlyExpense{
				AccountID: input.AccountID,
				Month:     month,
				Year:      year,
				Total:     input.Value,
			}
			monthlyTotal = monthly.Total

			return errors.WithStack(monthlyRepo.Create(ctx, monthly))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load monthly expense")
		}

		monthly.Total += input.Value
		monthlyTotal = monthly.Total

		return errors.WithStack(monthlyRepo.Update(ctx, monthly))
	})

	if err != nil {
		srv.logger.Error("Failed to execute expense transaction",
			slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute expense transaction")
	}

	return &usecase.AddExpenseOutput{
		Expense:      expense,
		MonthlyTotal: monthlyTotal,
	}, nil
}

// AddBill records a bill against an account.
func (srv *financeService) AddBill(ctx context.Context, input *usecase.AddBillInput) (*entity.Bill, error) {
	srv.logger.Debug("Recording bill", slog.Any("accountID", input.AccountID))

	bill := &entity.Bill{
		AccountID:      input.AccountID,
		Description:    input.Description,
		Value:          input.Value,
		ExpirationDate: input.ExpirationDate,
	}

	if err := srv.billRepo.Create(ctx, bill); err != nil {
		return nil, errors.Wrap(err, "failed to create bill")
	}

	return bill, nil
}
