// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidPeriod is returned when the analytics period is not today, week, month or year.
	ErrInvalidPeriod = errors.New("period must be: today, week, month, or year")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod AnalyticsErrorCode = "ANL-010001"
)

// AnalyticsError is a Failure carrying an AnalyticsErrorCode.
type AnalyticsError = Failure[AnalyticsErrorCode]

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return newFailure(code, message, err)
}
