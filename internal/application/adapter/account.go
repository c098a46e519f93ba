// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// AccountRepository stores remote-mode accounts. Emails are matched
// case-insensitively.
type AccountRepository interface {
	// Register persists a new account or returns
	// domainerror.ErrEmailAlreadyExists.
	Register(ctx context.Context, user *entity.User) error

	// FindByEmail returns the account or domainerror.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// TouchLogin records a successful sign-in.
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// SessionRepository tracks refresh-token sessions by token ID.
type SessionRepository interface {
	// Open stores a new session and drops the owner's expired ones.
	Open(ctx context.Context, session *entity.Session) error

	// Find returns the session or domainerror.ErrSessionNotFound.
	Find(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session revoked. Unknown IDs are not an error.
	Revoke(ctx context.Context, id string, at time.Time) error
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
	CheckStrength(password string) error
}

// TokenPair is the access and refresh token handed to a client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims are the verified contents of a token.
type TokenClaims struct {
	OwnerID   uuid.UUID
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies the JWTs of remote mode.
type TokenIssuer interface {
	// Issue opens a session and returns a token pair bound to it.
	Issue(ctx context.Context, ownerID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	// VerifyAccess checks an access token's signature, expiry and kind.
	VerifyAccess(ctx context.Context, token string) (*TokenClaims, error)

	// VerifyRefresh checks a refresh token and that its session is active.
	VerifyRefresh(ctx context.Context, token string) (*TokenClaims, error)

	// EndSession revokes the session behind a refresh token.
	EndSession(ctx context.Context, sessionID string) error
}
