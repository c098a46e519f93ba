package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// RefreshUseCase rotates a refresh token: its session ends and a new one
// opens.
type RefreshUseCase struct {
	tokens adapter.TokenIssuer
}

func NewRefreshUseCase(tokens adapter.TokenIssuer) *RefreshUseCase {
	return &RefreshUseCase{tokens: tokens}
}

func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	claims, err := uc.tokens.VerifyRefresh(ctx, refreshToken)
	switch {
	case errors.Is(err, domainerror.ErrSessionRevoked):
		slog.Warn("Revoked refresh token presented")
		return nil, domainerror.NewAuthError(domainerror.ErrCodeSessionRevoked, "refresh token has been revoked", err)
	case err != nil:
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid or expired refresh token", domainerror.ErrInvalidToken)
	}

	if err := uc.tokens.EndSession(ctx, claims.SessionID); err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	pair, err := uc.tokens.Issue(ctx, claims.OwnerID, claims.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return pair, nil
}

// LogoutUseCase ends the session behind a refresh token.
type LogoutUseCase struct {
	tokens adapter.TokenIssuer
}

func NewLogoutUseCase(tokens adapter.TokenIssuer) *LogoutUseCase {
	return &LogoutUseCase{tokens: tokens}
}

// Execute is idempotent: unknown, expired and already revoked tokens are
// ignored.
func (uc *LogoutUseCase) Execute(ctx context.Context, refreshToken string) {
	claims, err := uc.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		slog.Debug("Logout with inactive refresh token", "error", err)
		return
	}
	if err := uc.tokens.EndSession(ctx, claims.SessionID); err != nil {
		slog.Warn("Failed to end session", "owner_id", claims.OwnerID, "error", err)
	}
}
