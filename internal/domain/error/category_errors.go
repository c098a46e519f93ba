// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Category domain errors.
var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameExists   = errors.New("category name already exists")
	ErrCategoryNameTooLong  = errors.New("category name too long")
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrDefaultCategoryLocked guards the seeded categories.
	ErrDefaultCategoryLocked = errors.New("default categories cannot be deleted")

	// ErrCategoryInUse guards names that expenses still carry.
	ErrCategoryInUse = errors.New("category is used by existing expenses")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"

	// Deletion guard errors (02XXXX)
	ErrCodeDefaultCategoryLocked CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-020002"
)

// CategoryError is a Failure carrying a CategoryErrorCode.
type CategoryError = Failure[CategoryErrorCode]

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return newFailure(code, message, err)
}
