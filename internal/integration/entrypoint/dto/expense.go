// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/expense"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for logging an expense.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	PaymentType string           `json:"payment_type" binding:"required,oneof=cash card wallet"`
	CardID      *string          `json:"card_id,omitempty" binding:"omitempty,uuid"`
	Date        *time.Time       `json:"date,omitempty"`
	Description string           `json:"description,omitempty" binding:"max=500"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Category     string    `json:"category"`
	PaymentType  string    `json:"payment_type"`
	CardID       *string   `json:"card_id,omitempty"`
	CardNickname string    `json:"card_nickname,omitempty"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    float64           `json:"total"`
}

// StreakResponse represents the logging streak.
type StreakResponse struct {
	Current     int    `json:"current"`
	Longest     int    `json:"longest"`
	LastLogDate string `json:"last_log_date,omitempty"`
}

// BudgetAlertResponse represents a budget threshold crossed by a save.
type BudgetAlertResponse struct {
	CategoryName string  `json:"category_name"`
	BudgetAmount float64 `json:"budget_amount"`
	Spent        float64 `json:"spent"`
	Period       string  `json:"period"`
	Status       string  `json:"status"`
}

// SaveExpenseResponse represents everything produced by a save.
type SaveExpenseResponse struct {
	Expense       ExpenseResponse       `json:"expense"`
	Streak        StreakResponse        `json:"streak"`
	NewlyUnlocked []AchievementResponse `json:"newly_unlocked"`
	Notification  *AchievementResponse  `json:"notification,omitempty"`
	BudgetAlert   *BudgetAlertResponse  `json:"budget_alert,omitempty"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:           e.ID.String(),
		Amount:       e.Amount.InexactFloat64(),
		Category:     e.Category,
		PaymentType:  string(e.PaymentType),
		CardNickname: e.CardNickname,
		Description:  e.Description,
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
	}
	if e.CardID != nil {
		id := e.CardID.String()
		response.CardID = &id
	}
	return response
}

// ToExpenseListResponse converts the record collection.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	return ExpenseListResponse{
		Expenses: ToExpenseResponses(output.Expenses),
		Total:    output.Total.InexactFloat64(),
	}
}

// ToExpenseResponses converts a list of expenses.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}

// ToStreakResponse converts a streak.
func ToStreakResponse(s entity.Streak) StreakResponse {
	return StreakResponse{
		Current:     s.CurrentStreak,
		Longest:     s.LongestStreak,
		LastLogDate: s.LastLogDate,
	}
}

// ToBudgetAlertResponse converts an alert, keeping nil as nil.
func ToBudgetAlertResponse(alert *budget.Alert) *BudgetAlertResponse {
	if alert == nil {
		return nil
	}
	return &BudgetAlertResponse{
		CategoryName: alert.CategoryName,
		BudgetAmount: alert.BudgetAmount.InexactFloat64(),
		Spent:        alert.Spent.InexactFloat64(),
		Period:       string(alert.Period),
		Status:       string(alert.Status),
	}
}

// ToSaveExpenseResponse converts the save output.
func ToSaveExpenseResponse(output *expense.SaveExpenseOutput) SaveExpenseResponse {
	unlocked := make([]AchievementResponse, len(output.NewlyUnlocked))
	for i, def := range output.NewlyUnlocked {
		unlocked[i] = ToAchievementDefinitionResponse(def)
	}
	response := SaveExpenseResponse{
		Expense:       ToExpenseResponse(output.Expense),
		Streak:        ToStreakResponse(output.Streak),
		NewlyUnlocked: unlocked,
		BudgetAlert:   ToBudgetAlertResponse(output.BudgetAlert),
	}
	if output.Notification != nil {
		n := ToAchievementDefinitionResponse(*output.Notification)
		response.Notification = &n
	}
	return response
}
