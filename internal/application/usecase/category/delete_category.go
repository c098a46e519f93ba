package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type DeleteCategoryInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
}

type DeleteCategoryOutput struct {
	Deleted *entity.Category
}

// DeleteCategoryUseCase removes a custom category that no expense names.
// Defaults are never removed.
type DeleteCategoryUseCase struct {
	loader *workspace.Loader
}

func NewDeleteCategoryUseCase(loader *workspace.Loader) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{loader: loader}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	category := findCategory(ws.Categories, func(c *entity.Category) bool { return c.ID == input.CategoryID })
	switch {
	case category == nil:
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	case category.IsDefault:
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryLocked,
			"default categories cannot be deleted",
			domainerror.ErrDefaultCategoryLocked,
		)
	}

	if u := tally(ws.Expenses)[category.Name]; u.count > 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category is used by %d expenses", u.count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.loader.Repositories().Categories.Delete(ctx, input.OwnerID, category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("Category deleted", "owner_id", input.OwnerID, "name", category.Name)
	return &DeleteCategoryOutput{Deleted: category}, nil
}
