package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// financeServiceFixtures holds all test dependencies for finance service tests.
type financeServiceFixtures struct {
	service   usecase.FinanceUsecase
	txManager *mockRepo.MockTransactionManager
	billRepo  *mockRepo.MockBillRepository
}

func createTestFinanceService(t *testing.T) financeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	billRepo := mockRepo.NewMockBillRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFinanceService(FinanceServiceParams{
		TxManager: txManager,
		BillRepo:  billRepo,
		Logger:    logger,
	})

	return financeServiceFixtures{
		service:   service,
		txManager: txManager,
		billRepo:  billRepo,
	}
}

func TestFinanceService_AddExpense_FirstOfMonth(t *testing.T) {
	fx := createTestFinanceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.AddExpenseInput{
		AccountID:   accountID,
		Description: "Groceries",
		Value:       4250,
		Date:        time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)
			mockMonthlyRepo := mockRepo.NewMockMonthlyExpenseRepository(t)

			mockFactory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)
			mockFactory.EXPECT().MonthlyExpenseRepo().Return(mockMonthlyRepo)

			mockExpenseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Expense")).
				Return(nil)

			mockMonthlyRepo.EXPECT().
				LoadByMonth(ctx, accountID, 3, 2026).
				Return(nil, repository.ErrMonthlyExpenseNotFound)

			mockMonthlyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MonthlyExpense")).
				Run(func(ctx context.Context, monthly *entity.MonthlyExpense) {
					assert.Equal(t, accountID, monthly.AccountID)
					assert.Equal(t, 3, monthly.Month)
					assert.Equal(t, 2026, monthly.Year)
					assert.Equal(t, int64(4250), monthly.Total)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddExpense(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(4250), output.MonthlyTotal)
	assert.Equal(t, input.Description, output.Expense.Description)
}

func TestFinanceService_AddExpense_ExistingAggregate(t *testing.T) {
	fx := createTestFinanceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.AddExpenseInput{
		AccountID:   accountID,
		Description: "Internet",
		Value:       9900,
		Date:        time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockExpenseRepo := mockRepo.NewMockExpenseRepository(t)
			mockMonthlyRepo := mockRepo.NewMockMonthlyExpenseRepository(t)

			mockFactory.EXPECT().ExpenseRepo().Return(mockExpenseRepo)
			mockFactory.EXPECT().MonthlyExpenseRepo().Return(mockMonthlyRepo)

			mockExpenseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Expense")).
				Return(nil)

			mockMonthlyRepo.EXPECT().
				LoadByMonth(ctx, accountID, 3, 2026).
				Return(&entity.MonthlyExpense{
					ID:        uuid.New(),
					AccountID: accountID,
					Month:     3,
					Year:      2026,
					Total:     4250,
				}, nil)

			mockMonthlyRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.MonthlyExpense")).
				Run(func(ctx context.Context, monthly *entity.MonthlyExpense) {
					assert.Equal(t, int64(14150), monthly.Total)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddExpense(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(14150), output.MonthlyTotal)
}

func TestFinanceService_AddExpense_TransactionFault(t *testing.T) {
	fx := createTestFinanceService(t)

	ctx := context.Background()
	txErr := errors.New("deadlock detected")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	output, err := fx.service.AddExpense(ctx, &usecase.AddExpenseInput{
		AccountID: uuid.New(),
		Value:     100,
		Date:      time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, txErr)
	assert.Nil(t, output)
}

func TestFinanceService_AddBill_Success(t *testing.T) {
	fx := createTestFinanceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.AddBillInput{
		AccountID:      accountID,
		Description:    "Electricity",
		Value:          12300,
		ExpirationDate: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
	}

	fx.billRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bill")).
		Run(func(ctx context.Context, bill *entity.Bill) {
			assert.Equal(t, accountID, bill.AccountID)
			assert.Equal(t, input.Description, bill.Description)
			assert.Equal(t, input.Value, bill.Value)
		}).
		Return(nil)

	bill, err := fx.service.AddBill(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.Equal(t, input.ExpirationDate, bill.ExpirationDate)
}

func TestFinanceService_AddBill_StoreFault(t *testing.T) {
	fx := createTestFinanceService(t)

	ctx := context.Background()
	storeErr := errors.New("insert failed")

	fx.billRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bill")).
		Return(storeErr)

	bill, err := fx.service.AddBill(ctx, &usecase.AddBillInput{
		AccountID:      uuid.New(),
		Description:    "Water",
		Value:          5000,
		ExpirationDate: time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, bill)
}
