// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how an expense was paid.
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeCard   PaymentType = "card"
	PaymentTypeWallet PaymentType = "wallet"
)

// IsValid reports whether the payment type is one of the known values.
func (p PaymentType) IsValid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCard || p == PaymentTypeWallet
}

// Expense represents one logged transaction. Records are append-only.
type Expense struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Amount       decimal.Decimal
	Category     string // Matched by name, not by ID
	PaymentType  PaymentType
	CardID       *uuid.UUID // Only set when PaymentType is card
	CardNickname string
	Date         time.Time // When the expense happened, as stated by the user
	CreatedAt    time.Time // When the expense was logged
	Description  string
}

// NewExpense creates a new Expense entity. ID and CreatedAt are assigned by the
// record store on append.
func NewExpense(
	ownerID uuid.UUID,
	amount decimal.Decimal,
	category string,
	paymentType PaymentType,
	date time.Time,
	description string,
) *Expense {
	return &Expense{
		OwnerID:     ownerID,
		Amount:      amount,
		Category:    category,
		PaymentType: paymentType,
		Date:        date,
		Description: description,
	}
}

// WithCard attaches card metadata to a card payment.
func (e *Expense) WithCard(card *Card) *Expense {
	if card == nil {
		return e
	}
	id := card.ID
	e.CardID = &id
	e.CardNickname = card.Nickname
	return e
}
