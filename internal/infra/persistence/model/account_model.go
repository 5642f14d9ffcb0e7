// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique index on email is a store-level backstop; the sign-up flow still
// checks for duplicates before inserting.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	AccessToken *string   `gorm:"type:varchar(512);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Expenses []ExpenseModel `gorm:"foreignKey:AccountID"`
	Bills    []BillModel    `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
