// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestOwnerID owns every collection in offline/guest mode.
var GuestOwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// User is an account of the remote (multi-device) mode. Its ID owns the
// account's ledger collections.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User. Emails are stored lower-case.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeEmail trims and lower-cases an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is one refresh-token lineage. A refresh token is accepted while
// its session is neither revoked nor expired.
type Session struct {
	ID        string
	OwnerID   uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the session still accepts its refresh token at now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
