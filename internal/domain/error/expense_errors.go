// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrNegativeAmount is returned when an expense amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrUnknownCategory is returned when an expense names a category that does not exist.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidPaymentType is returned when the payment type is not cash, card or wallet.
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrCardRequired is returned when a card payment does not reference a known card.
	ErrCardRequired = errors.New("card payment requires a known card")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount       ExpenseErrorCode = "EXP-010001"
	ErrCodeUnknownCategory      ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPaymentType   ExpenseErrorCode = "EXP-010003"
	ErrCodeCardRequired         ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010005"
)

// ExpenseError is a Failure carrying an ExpenseErrorCode.
type ExpenseError = Failure[ExpenseErrorCode]

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return newFailure(code, message, err)
}
