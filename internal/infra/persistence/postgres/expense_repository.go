package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expenseRepository implements the repository.ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create persists a new expense. The store assigns the ID and timestamps.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := &model.ExpenseModel{
		AccountID:   expense.AccountID,
		Description: expense.Description,
		Value:       expense.Value,
		Date:        expense.Date,
	}

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "expense references an unknown account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt

	return nil
}

// billRepository implements the repository.BillRepository interface using GORM.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository is the constructor for billRepository.
func NewBillRepository(db *gorm.DB) repository.BillRepository {
	return &billRepository{db: db}
}

// Create persists a new bill. The store assigns the ID and timestamps.
func (repo *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billM := &model.BillModel{
		AccountID:      bill.AccountID,
		Description:    bill.Description,
		Value:          bill.Value,
		ExpirationDate: bill.ExpirationDate,
	}

	if err := repo.db.WithContext(ctx).Create(billM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "bill references an unknown account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bill")
	}

	bill.ID = billM.ID
	bill.CreatedAt = billM.CreatedAt

	return nil
}

// monthlyExpenseRepository implements the repository.MonthlyExpenseRepository interface using GORM.
type monthlyExpenseRepository struct {
	db *gorm.DB
}

// NewMonthlyExpenseRepository is the constructor for monthlyExpenseRepository.
func NewMonthlyExpenseRepository(db *gorm.DB) repository.MonthlyExpenseRepository {
	return &monthlyExpenseRepository{db: db}
}

// LoadByMonth retrieves the aggregate row for an account and calendar month.
func (repo *monthlyExpenseRepository) LoadByMonth(ctx context.Context, accountID uuid.UUID, month, year int) (*entity.MonthlyExpense, error) {
	var monthlyM model.MonthlyExpenseModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND month = ? AND year = ?", accountID, month, year).
		First(&monthlyM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMonthlyExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to load monthly expense")
	}

	return &entity.MonthlyExpense{
		ID:        monthlyM.ID,
		AccountID: monthlyM.AccountID,
		Month:     monthlyM.Month,
		Year:      monthlyM.Year,
		Total:     monthlyM.Total,
		UpdatedAt: monthlyM.UpdatedAt,
	}, nil
}

// Create persists a new aggregate row.
func (repo *monthlyExpenseRepository) Create(ctx context.Context, monthly *entity.MonthlyExpense) error {
	monthlyM := &model.MonthlyExpenseModel{
		AccountID: monthly.AccountID,
		Month:     monthly.Month,
		Year:      monthly.Year,
		Total:     monthly.Total,
	}

	if err := repo.db.WithContext(ctx).Create(monthlyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create monthly expense")
	}

	monthly.ID = monthlyM.ID
	monthly.UpdatedAt = monthlyM.UpdatedAt

	return nil
}

// Update overwrites an existing aggregate row's total.
func (repo *monthlyExpenseRepository) Update(ctx context.Context, monthly *entity.MonthlyExpense) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MonthlyExpenseModel{}).
		Where("id = ?", monthly.ID).
		Update("total", monthly.Total).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update monthly expense")
	}

	return nil
}
