// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Account and session errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken covers bad signatures, expiry and wrong token kinds.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionNotFound is returned when a refresh token names no stored session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned for a refresh token whose session was
	// ended by logout or rotation.
	ErrSessionRevoked = errors.New("session revoked")

	// ErrNotAuthenticated is returned when a write needs an authenticated owner.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken   AuthErrorCode = "AUTH-030001"
	ErrCodeSessionRevoked AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken   AuthErrorCode = "AUTH-030003"
)

// AuthError is a Failure carrying an AuthErrorCode.
type AuthError = Failure[AuthErrorCode]

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return newFailure(code, message, err)
}

// InvalidCredentials is the single answer to unknown emails and wrong
// passwords.
func InvalidCredentials() *AuthError {
	return NewAuthError(ErrCodeInvalidCredentials, "invalid email or password", ErrInvalidCredentials)
}
