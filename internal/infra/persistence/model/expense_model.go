package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel mirrors the 'expenses' table.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	Value       int64     `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// BillModel mirrors the 'bills' table.
type BillModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description    string    `gorm:"type:varchar(255);not null"`
	Value          int64     `gorm:"not null"`
	ExpirationDate time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bills"
}

// MonthlyExpenseModel mirrors the 'monthly_expenses' table. One row per
// account and calendar month.
type MonthlyExpenseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_account_month"`
	Month     int       `gorm:"not null;uniqueIndex:idx_monthly_account_month"`
	Year      int       `gorm:"not null;uniqueIndex:idx_monthly_account_month"`
	Total     int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MonthlyExpenseModel) TableName() string {
	return "monthly_expenses"
}
