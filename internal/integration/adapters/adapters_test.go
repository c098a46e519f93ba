package adapters

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type memSessions struct {
	mu   sync.Mutex
	rows map[string]entity.Session
}

func newMemSessions() *memSessions {
	return &memSessions{rows: map[string]entity.Session{}}
}

func (m *memSessions) Open(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.ID] = *s
	return nil
}

func (m *memSessions) Find(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, domainerror.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memSessions) Revoke(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.rows[id]; ok && s.RevokedAt == nil {
		s.RevokedAt = &at
		m.rows[id] = s
	}
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "adapter-test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	issuer := NewJWTIssuer(testJWTConfig(), sessions)
	ownerID := uuid.New()

	pair, err := issuer.Issue(ctx, ownerID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.rows) != 1 {
		t.Fatalf("expected one open session, got %d", len(sessions.rows))
	}

	access, err := issuer.VerifyAccess(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if access.OwnerID != ownerID || access.Email != "ana@example.com" {
		t.Errorf("unexpected claims %+v", access)
	}

	refresh, err := issuer.VerifyRefresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token rejected: %v", err)
	}
	if refresh.SessionID != access.SessionID {
		t.Errorf("expected both tokens to name session %s, got %s", access.SessionID, refresh.SessionID)
	}

	if _, err := issuer.VerifyAccess(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected refresh token to fail as access token, got %v", err)
	}
	if _, err := issuer.VerifyRefresh(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected access token to fail as refresh token, got %v", err)
	}

	if err := issuer.EndSession(ctx, refresh.SessionID); err != nil {
		t.Fatalf("end session failed: %v", err)
	}
	if _, err := issuer.VerifyRefresh(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrSessionRevoked) {
		t.Errorf("expected ErrSessionRevoked, got %v", err)
	}
	if _, err := issuer.VerifyAccess(ctx, pair.AccessToken); err != nil {
		t.Errorf("access tokens live until expiry, got %v", err)
	}
}

func TestJWTIssuer_UnknownSession(t *testing.T) {
	ctx := context.Background()
	pair, err := NewJWTIssuer(testJWTConfig(), newMemSessions()).Issue(ctx, uuid.New(), "ana@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same secret, different session store.
	other := NewJWTIssuer(testJWTConfig(), newMemSessions())
	if _, err := other.VerifyRefresh(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestJWTIssuer_Expiry(t *testing.T) {
	ctx := context.Background()
	issuer := NewJWTIssuer(testJWTConfig(), newMemSessions()).(*jwtIssuer)
	issued := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		rememberMe  bool
		checkAt     time.Time
		wantAccess  bool
		wantRefresh bool
	}{
		{"fresh", false, issued.Add(time.Minute), true, true},
		{"access expired", false, issued.Add(16 * time.Minute), false, true},
		{"remembered access outlives the default", true, issued.Add(30 * time.Minute), true, true},
		{"refresh expired", false, issued.Add(25 * time.Hour), false, false},
		{"remembered refresh outlives the default", true, issued.Add(72 * time.Hour), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer.now = func() time.Time { return issued }
			pair, err := issuer.Issue(ctx, uuid.New(), "ana@example.com", tt.rememberMe)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			issuer.now = func() time.Time { return tt.checkAt }
			if _, err := issuer.VerifyAccess(ctx, pair.AccessToken); (err == nil) != tt.wantAccess {
				t.Errorf("access: expected valid=%v, got err=%v", tt.wantAccess, err)
			}
			if _, err := issuer.VerifyRefresh(ctx, pair.RefreshToken); (err == nil) != tt.wantRefresh {
				t.Errorf("refresh: expected valid=%v, got err=%v", tt.wantRefresh, err)
			}
		})
	}
}

func TestJWTIssuer_RejectsForeignSecret(t *testing.T) {
	ctx := context.Background()
	pair, err := NewJWTIssuer(testJWTConfig(), newMemSessions()).Issue(ctx, uuid.New(), "ana@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := testJWTConfig()
	cfg.Secret = "someone-else"
	if _, err := NewJWTIssuer(cfg, nil).VerifyAccess(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected foreign signature to be rejected, got %v", err)
	}
}

func TestJWTIssuer_WithoutSessions(t *testing.T) {
	issuer := NewJWTIssuer(testJWTConfig(), nil)
	if _, err := issuer.Issue(context.Background(), uuid.New(), "ana@example.com", false); !errors.Is(err, ErrSessionsUnavailable) {
		t.Errorf("expected ErrSessionsUnavailable, got %v", err)
	}
	if err := issuer.EndSession(context.Background(), "any"); !errors.Is(err, ErrSessionsUnavailable) {
		t.Errorf("expected ErrSessionsUnavailable, got %v", err)
	}
}

func TestBcryptHasher_CheckStrength(t *testing.T) {
	hasher := NewBcryptHasher()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "SecurePass123!", nil},
		{"too short", "abc12", errPasswordTooShort},
		{"no digit", "onlyletters", errPasswordNoDigit},
		{"no letter", "1234567890", errPasswordNoDigit},
		{"too long", "a1" + strings.Repeat("x", 80), errPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := hasher.CheckStrength(tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := &bcryptHasher{cost: 4}

	hashed, err := hasher.Hash("SecurePass123!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "SecurePass123!" {
		t.Fatal("expected password to be hashed")
	}
	if err := hasher.Compare(hashed, "SecurePass123!"); err != nil {
		t.Errorf("expected password to match: %v", err)
	}
	if err := hasher.Compare(hashed, "WrongPass123!"); err == nil {
		t.Error("expected wrong password to fail")
	}
}
