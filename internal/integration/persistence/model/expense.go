// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table. Rows are never updated. Seq
// numbers an owner's rows in append order, so equal timestamps still sort.
type ExpenseModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_owner_seq"`
	Seq          int64           `gorm:"not null;default:0;index:idx_expenses_owner_seq"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null"`
	Category     string          `gorm:"type:varchar(50);not null"`
	PaymentType  string          `gorm:"type:varchar(10);not null"`
	CardID       *uuid.UUID      `gorm:"type:uuid"`
	CardNickname string          `gorm:"type:varchar(100)"`
	Description  string          `gorm:"type:text"`
	Date         time.Time       `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Amount:       m.Amount,
		Category:     m.Category,
		PaymentType:  entity.PaymentType(m.PaymentType),
		CardID:       m.CardID,
		CardNickname: m.CardNickname,
		Description:  m.Description,
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:           expense.ID,
		OwnerID:      expense.OwnerID,
		Amount:       expense.Amount,
		Category:     expense.Category,
		PaymentType:  string(expense.PaymentType),
		CardID:       expense.CardID,
		CardNickname: expense.CardNickname,
		Description:  expense.Description,
		Date:         expense.Date,
		CreatedAt:    expense.CreatedAt,
	}
}
