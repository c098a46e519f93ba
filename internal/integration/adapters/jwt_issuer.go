// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

const (
	tokenIssuer = "pocket-ledger"

	kindAccess  = "access"
	kindRefresh = "refresh"

	// rememberMeFactor stretches both lifetimes when a session is remembered.
	rememberMeFactor = 4
)

// ErrSessionsUnavailable is returned when the store cannot hold sessions.
var ErrSessionsUnavailable = errors.New("sessions are not supported by this store")

// ledgerClaims are shared by both token kinds. Subject is the ledger owner
// and ID is the session, so an access token and its refresh token carry the
// same ID.
type ledgerClaims struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	sessions   adapter.SessionRepository
	now        func() time.Time
}

// NewJWTIssuer creates an HS256 issuer. sessions may be nil on guest-only
// stores: access tokens still verify, but nothing can be issued.
func NewJWTIssuer(cfg config.JWTConfig, sessions adapter.SessionRepository) adapter.TokenIssuer {
	return &jwtIssuer{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTokenExpiry,
		refreshTTL: cfg.RefreshTokenExpiry,
		sessions:   sessions,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *jwtIssuer) Issue(ctx context.Context, ownerID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	if s.sessions == nil {
		return nil, ErrSessionsUnavailable
	}

	accessTTL, refreshTTL := s.accessTTL, s.refreshTTL
	if rememberMe {
		accessTTL *= rememberMeFactor
		refreshTTL *= rememberMeFactor
	}

	now := s.now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		ExpiresAt: now.Add(refreshTTL),
		CreatedAt: now,
	}

	access, err := s.sign(session.ID, ownerID, email, kindAccess, now, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(session.ID, ownerID, email, kindRefresh, now, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.sessions.Open(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return &adapter.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *jwtIssuer) VerifyAccess(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.parse(token, kindAccess)
}

func (s *jwtIssuer) VerifyRefresh(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parse(token, kindRefresh)
	if err != nil {
		return nil, err
	}
	if s.sessions == nil {
		return nil, ErrSessionsUnavailable
	}

	session, err := s.sessions.Find(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != claims.OwnerID || !session.Active(s.now()) {
		return nil, domainerror.ErrSessionRevoked
	}
	return claims, nil
}

func (s *jwtIssuer) EndSession(ctx context.Context, sessionID string) error {
	if s.sessions == nil {
		return ErrSessionsUnavailable
	}
	return s.sessions.Revoke(ctx, sessionID, s.now())
}

func (s *jwtIssuer) sign(sessionID string, ownerID uuid.UUID, email, kind string, now time.Time, ttl time.Duration) (string, error) {
	claims := ledgerClaims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   ownerID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *jwtIssuer) parse(raw, kind string) (*adapter.TokenClaims, error) {
	var claims ledgerClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("%w: expected %s token", domainerror.ErrInvalidToken, kind)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		OwnerID:   ownerID,
		Email:     claims.Email,
		SessionID: claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
