// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
)

// AnalyticsResponse represents one period snapshot.
type AnalyticsResponse struct {
	Period      string            `json:"period"`
	WindowStart time.Time         `json:"window_start"`
	Total       float64           `json:"total"`
	Count       int               `json:"count"`
	Records     []ExpenseResponse `json:"records"`
}

// CategoryTotalResponse represents one slice of the breakdown.
type CategoryTotalResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the per-category breakdown of a period.
type CategoryBreakdownResponse struct {
	Period     string                  `json:"period"`
	Total      float64                 `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToAnalyticsResponse converts a snapshot output.
func ToAnalyticsResponse(output *analytics.GetSnapshotOutput) AnalyticsResponse {
	return AnalyticsResponse{
		Period:      string(output.Period),
		WindowStart: output.WindowStart,
		Total:       output.Total.InexactFloat64(),
		Count:       len(output.Records),
		Records:     ToExpenseResponses(output.Records),
	}
}

// ToCategoryBreakdownResponse converts a breakdown output.
func ToCategoryBreakdownResponse(output *analytics.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryTotalResponse{
			Category:   c.Category,
			Amount:     c.Amount.InexactFloat64(),
			Percentage: c.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Period:     string(output.Period),
		Total:      output.Total.InexactFloat64(),
		Categories: categories,
	}
}
