// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Budget and spending limit domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the category and period.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and period")

	// ErrInvalidBudgetAmount is returned when a budget or limit amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetPeriod is returned when the period is not week or month.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrSpendingLimitNotFound is returned when no spending limit is stored yet.
	ErrSpendingLimitNotFound = errors.New("spending limit not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BUD-010001"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010005"
)

// BudgetError is a Failure carrying a BudgetErrorCode.
type BudgetError = Failure[BudgetErrorCode]

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return newFailure(code, message, err)
}
