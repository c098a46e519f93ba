// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Achievement domain errors.
var (
	// ErrAchievementNotFound is returned when the ID is not in the catalog.
	ErrAchievementNotFound = errors.New("achievement not found")

	// ErrAchievementLocked is returned when showcasing a badge that is not unlocked.
	ErrAchievementLocked = errors.New("achievement is not unlocked")

	// ErrShowcaseFull is returned when the showcase already holds the maximum number of badges.
	ErrShowcaseFull = errors.New("showcase is full")

	// ErrAchievementStateNotFound is returned when no achievement state is stored yet.
	ErrAchievementStateNotFound = errors.New("achievement state not found")

	// ErrRequirementNotSupported is returned by the evaluator for catalogued
	// requirement kinds that have no unlock rule yet.
	ErrRequirementNotSupported = errors.New("requirement not yet supported")
)

// AchievementErrorCode defines error codes for achievement errors.
// Format: ACH-XXYYYY where XX is category and YYYY is specific error.
type AchievementErrorCode string

const (
	// Showcase errors (01XXXX)
	ErrCodeAchievementNotFound AchievementErrorCode = "ACH-010001"
	ErrCodeAchievementLocked   AchievementErrorCode = "ACH-010002"
	ErrCodeShowcaseFull        AchievementErrorCode = "ACH-010003"
)

// AchievementError is a Failure carrying an AchievementErrorCode.
type AchievementError = Failure[AchievementErrorCode]

// NewAchievementError creates a new AchievementError with the given code and message.
func NewAchievementError(code AchievementErrorCode, message string, err error) *AchievementError {
	return newFailure(code, message, err)
}
