// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Card domain errors.
var (
	ErrCardNotFound         = errors.New("card not found")
	ErrInvalidLastFour      = errors.New("last four must be exactly 4 digits")
	ErrCardNicknameRequired = errors.New("card nickname is required")
)

// CardErrorCode defines error codes for card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCardNotFound        CardErrorCode = "CRD-010001"
	ErrCodeInvalidLastFour     CardErrorCode = "CRD-010002"
	ErrCodeCardNicknameMissing CardErrorCode = "CRD-010003"
)

// CardError is a Failure carrying a CardErrorCode.
type CardError = Failure[CardErrorCode]

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return newFailure(code, message, err)
}
