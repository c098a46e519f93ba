// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

const (
	MaxCategoryNameLength = 50
	MaxIconLength         = 50
)

type CreateCategoryInput struct {
	OwnerID uuid.UUID
	Name    string
	// Icon falls back to entity.DefaultCategoryIcon when blank or too long.
	Icon string
}

type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase adds a custom category. Names are the matching key
// of expenses, so they are unique ignoring case.
type CreateCategoryUseCase struct {
	loader *workspace.Loader
}

func NewCreateCategoryUseCase(loader *workspace.Loader) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{loader: loader}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return nil, err
	}

	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	existing, err := uc.loader.Repositories().Categories.FindByName(ctx, ws.OwnerID, name)
	switch {
	case err == nil:
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category %q already exists", existing.Name),
			domainerror.ErrCategoryNameExists,
		)
	case !errors.Is(err, domainerror.ErrCategoryNotFound):
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	category := entity.NewCategory(input.OwnerID, name, cleanIcon(input.Icon))
	if err := uc.loader.Repositories().Categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("Category created", "owner_id", input.OwnerID, "name", name)
	return &CreateCategoryOutput{Category: category}, nil
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	case utf8.RuneCountInString(name) > MaxCategoryNameLength:
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func cleanIcon(raw string) string {
	icon := strings.TrimSpace(raw)
	if icon == "" || len(icon) > MaxIconLength {
		return entity.DefaultCategoryIcon
	}
	return icon
}

func findCategory(categories []*entity.Category, match func(*entity.Category) bool) *entity.Category {
	for _, c := range categories {
		if match(c) {
			return c
		}
	}
	return nil
}
