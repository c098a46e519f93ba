package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// LoginInput is a sign-in request.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUseCase checks credentials and opens a session.
type LoginUseCase struct {
	accounts adapter.AccountRepository
	hasher   adapter.PasswordHasher
	tokens   adapter.TokenIssuer
	clock    adapter.Clock
}

func NewLoginUseCase(
	accounts adapter.AccountRepository,
	hasher adapter.PasswordHasher,
	tokens adapter.TokenIssuer,
	clock adapter.Clock,
) *LoginUseCase {
	return &LoginUseCase{accounts: accounts, hasher: hasher, tokens: tokens, clock: clock}
}

// Execute answers unknown emails and wrong passwords alike.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*Result, error) {
	user, err := uc.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.InvalidCredentials()
	}
	if err := uc.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.InvalidCredentials()
	}

	pair, err := uc.tokens.Issue(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	at := uc.clock.Now().UTC()
	if err := uc.accounts.TouchLogin(ctx, user.ID, at); err != nil {
		slog.Warn("Failed to record login", "owner_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &at
	}

	return &Result{Tokens: *pair, User: user}, nil
}
