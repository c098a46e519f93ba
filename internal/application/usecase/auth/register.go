// Package auth contains the account use cases of remote mode.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// RegisterInput is a sign-up request.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Result is returned by every use case that opens a session.
type Result struct {
	Tokens adapter.TokenPair
	User   *entity.User
}

// RegisterUseCase creates an account, seeds its ledger and signs it in.
type RegisterUseCase struct {
	accounts adapter.AccountRepository
	hasher   adapter.PasswordHasher
	tokens   adapter.TokenIssuer
	loader   *workspace.Loader
}

func NewRegisterUseCase(
	accounts adapter.AccountRepository,
	hasher adapter.PasswordHasher,
	tokens adapter.TokenIssuer,
	loader *workspace.Loader,
) *RegisterUseCase {
	return &RegisterUseCase{accounts: accounts, hasher: hasher, tokens: tokens, loader: loader}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*Result, error) {
	email := entity.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "email, name and password are required", nil)
	}
	if !emailPattern.MatchString(email) {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
	}
	if err := uc.hasher.CheckStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), domainerror.ErrWeakPassword)
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, name, hash)
	if err := uc.accounts.Register(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", err)
		}
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	// Seeded before the first token exists.
	if err := uc.loader.Initialize(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	pair, err := uc.tokens.Issue(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	slog.Info("Account registered", "owner_id", user.ID)
	return &Result{Tokens: *pair, User: user}, nil
}
