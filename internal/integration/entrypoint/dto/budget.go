// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryName string           `json:"category_name" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	Period       string           `json:"period" binding:"required,oneof=week month"`
}

// SpendingLimitRequest represents the request body for setting the global limit.
type SpendingLimitRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Period string           `json:"period" binding:"required,oneof=week month"`
}

// BudgetResponse represents a budget with its current status.
type BudgetResponse struct {
	ID           string    `json:"id"`
	CategoryName string    `json:"category_name"`
	Amount       float64   `json:"amount"`
	Period       string    `json:"period"`
	Spent        float64   `json:"spent"`
	Remaining    float64   `json:"remaining"`
	Percentage   float64   `json:"percentage"`
	Status       string    `json:"status"`
	IsOverBudget bool      `json:"is_over_budget"`
	CreatedAt    time.Time `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// SpendingLimitResponse represents the stored global limit.
type SpendingLimitResponse struct {
	Amount    float64   `json:"amount"`
	Period    string    `json:"period"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpendingStatusResponse represents the global limit status.
type SpendingStatusResponse struct {
	Limit       float64 `json:"limit"`
	Period      string  `json:"period"`
	Spent       float64 `json:"spent"`
	Percentage  float64 `json:"percentage"`
	IsOverLimit bool    `json:"is_over_limit"`
}

// ToBudgetResponse converts a budget and its status.
func ToBudgetResponse(b *entity.Budget, status budget.CategoryStatus) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		CategoryName: b.CategoryName,
		Amount:       b.Amount.InexactFloat64(),
		Period:       string(b.Period),
		Spent:        status.Spent.InexactFloat64(),
		Remaining:    status.Remaining.InexactFloat64(),
		Percentage:   status.Percentage,
		Status:       string(status.Status),
		IsOverBudget: status.IsOverBudget,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBudgetListResponse converts the list output.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b.Budget, b.Status)
	}
	return BudgetListResponse{Budgets: budgets}
}

// ToSpendingLimitResponse converts a stored limit.
func ToSpendingLimitResponse(limit *entity.SpendingLimit) SpendingLimitResponse {
	return SpendingLimitResponse{
		Amount:    limit.Amount.InexactFloat64(),
		Period:    string(limit.Period),
		UpdatedAt: limit.UpdatedAt,
	}
}

// ToSpendingStatusResponse converts the limit status.
func ToSpendingStatusResponse(status *budget.LimitStatus) SpendingStatusResponse {
	return SpendingStatusResponse{
		Limit:       status.Limit.InexactFloat64(),
		Period:      string(status.Period),
		Spent:       status.Spent.InexactFloat64(),
		Percentage:  status.Percentage,
		IsOverLimit: status.IsOverLimit,
	}
}
