// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Icon string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	IsDefault    bool      `json:"is_default"`
	ExpenseCount int       `json:"expense_count"`
	Total        float64   `json:"total"`
	Deletable    bool      `json:"deletable"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a freshly created category. It has no expenses
// and is never a default, so it is always deletable.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Icon:      cat.IconName,
		IsDefault: cat.IsDefault,
		Deletable: !cat.IsDefault,
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = CategoryResponse{
			ID:           output.Category.ID.String(),
			Name:         output.Category.Name,
			Icon:         output.Category.IconName,
			IsDefault:    output.Category.IsDefault,
			ExpenseCount: output.ExpenseCount,
			Total:        output.Total.InexactFloat64(),
			Deletable:    output.Deletable,
			CreatedAt:    output.Category.CreatedAt,
		}
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
