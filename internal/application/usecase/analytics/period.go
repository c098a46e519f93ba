// Package analytics contains period filtering and category breakdown use cases.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// Period represents an analytics window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// IsValid reports whether the period is one of the known windows.
func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// ParsePeriod converts a raw value into a Period. An empty value means month.
func ParsePeriod(raw string) (Period, error) {
	if raw == "" {
		return PeriodMonth, nil
	}
	p := Period(raw)
	if !p.IsValid() {
		return "", domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			domainerror.ErrInvalidPeriod.Error(),
			domainerror.ErrInvalidPeriod,
		)
	}
	return p, nil
}

// WindowStart returns the inclusive lower bound of a period ending at now.
// Today is aligned to local midnight; the other windows roll back from now.
// AddDate normalizes overflow the same way a calendar rollback does, so
// March 31 minus one month lands on March 3 (or 2 in leap years).
func WindowStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// RollingStart returns the window start for a limit or budget period.
func RollingStart(period entity.BudgetPeriod, now time.Time) time.Time {
	if period == entity.BudgetPeriodWeek {
		return WindowStart(PeriodWeek, now)
	}
	return WindowStart(PeriodMonth, now)
}

// Filtered is a period slice of the record collection.
type Filtered struct {
	Records []*entity.Expense
	Total   decimal.Decimal
}

// FilterSince keeps records dated at or after start, with no upper bound.
func FilterSince(records []*entity.Expense, start time.Time) Filtered {
	out := Filtered{Records: []*entity.Expense{}, Total: decimal.Zero}
	for _, r := range records {
		if r.Date.Before(start) {
			continue
		}
		out.Records = append(out.Records, r)
		out.Total = out.Total.Add(r.Amount)
	}
	return out
}

// FilterByPeriod keeps the records that fall in period and sums them.
func FilterByPeriod(records []*entity.Expense, period Period, now time.Time) Filtered {
	return FilterSince(records, WindowStart(period, now))
}
