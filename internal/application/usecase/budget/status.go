// Package budget contains the spending limit and per-category budget use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// Status is the threshold band of a budget.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Threshold bands in percent of the budget amount.
const (
	WarningThreshold = 70
	DangerThreshold  = 90
)

var hundred = decimal.NewFromInt(100)

// LimitStatus is the state of the global spending limit.
type LimitStatus struct {
	Limit       decimal.Decimal     `json:"limit"`
	Period      entity.BudgetPeriod `json:"period"`
	Spent       decimal.Decimal     `json:"spent"`
	Percentage  float64             `json:"percentage"`
	IsOverLimit bool                `json:"is_over_limit"`
}

// SpendingStatus sums every record in the limit's rolling window. The
// percentage is capped at 100 while IsOverLimit compares the raw amounts.
func SpendingStatus(records []*entity.Expense, limit *entity.SpendingLimit, now time.Time) LimitStatus {
	spent := analytics.FilterSince(records, analytics.RollingStart(limit.Period, now)).Total

	pct := percentOf(spent, limit.Amount)
	if pct > 100 {
		pct = 100
	}

	return LimitStatus{
		Limit:       limit.Amount,
		Period:      limit.Period,
		Spent:       spent,
		Percentage:  pct,
		IsOverLimit: spent.GreaterThan(limit.Amount),
	}
}

// CategoryStatus is the state of one per-category budget.
type CategoryStatus struct {
	CategoryName string              `json:"category_name"`
	Amount       decimal.Decimal     `json:"amount"`
	Period       entity.BudgetPeriod `json:"period"`
	Spent        decimal.Decimal     `json:"spent"`
	Remaining    decimal.Decimal     `json:"remaining"`
	Percentage   float64             `json:"percentage"`
	Status       Status              `json:"status"`
	IsOverBudget bool                `json:"is_over_budget"`
}

// BudgetStatus computes a budget over its rolling window. Unlike
// SpendingStatus the percentage is not capped, and Remaining may be negative.
func BudgetStatus(
	records []*entity.Expense,
	categoryName string,
	amount decimal.Decimal,
	period entity.BudgetPeriod,
	now time.Time,
) CategoryStatus {
	start := analytics.RollingStart(period, now)
	spent := decimal.Zero
	for _, r := range records {
		if r.Category == categoryName && !r.Date.Before(start) {
			spent = spent.Add(r.Amount)
		}
	}

	pct := percentOf(spent, amount)
	return CategoryStatus{
		CategoryName: categoryName,
		Amount:       amount,
		Period:       period,
		Spent:        spent,
		Remaining:    amount.Sub(spent),
		Percentage:   pct,
		Status:       classify(pct),
		IsOverBudget: spent.GreaterThan(amount),
	}
}

// Alert is raised when a save pushes a budget into warning or danger.
type Alert struct {
	CategoryName string              `json:"category_name"`
	BudgetAmount decimal.Decimal     `json:"budget_amount"`
	Spent        decimal.Decimal     `json:"spent"`
	Period       entity.BudgetPeriod `json:"period"`
	Status       Status              `json:"status"`
}

// EvaluateAlert checks every budget on categoryName in order and returns the
// alert of the last one in warning or danger. There is a single alert slot.
func EvaluateAlert(
	records []*entity.Expense,
	budgets []*entity.Budget,
	categoryName string,
	now time.Time,
) *Alert {
	var alert *Alert
	for _, b := range budgets {
		if b.CategoryName != categoryName {
			continue
		}
		status := BudgetStatus(records, b.CategoryName, b.Amount, b.Period, now)
		if status.Status == StatusSafe {
			continue
		}
		alert = &Alert{
			CategoryName: b.CategoryName,
			BudgetAmount: b.Amount,
			Spent:        status.Spent,
			Period:       b.Period,
			Status:       status.Status,
		}
	}
	return alert
}

func classify(pct float64) Status {
	switch {
	case pct >= DangerThreshold:
		return StatusDanger
	case pct >= WarningThreshold:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Mul(hundred).Div(whole).InexactFloat64()
}
