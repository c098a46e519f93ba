package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// CategoryTotals groups records by category name, sorted by amount descending.
// Ties keep first-encountered order and zero-sum groups are dropped.
func CategoryTotals(records []*entity.Expense) []CategoryTotal {
	index := map[string]int{}
	totals := []CategoryTotal{}
	grand := decimal.Zero

	for _, r := range records {
		grand = grand.Add(r.Amount)
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(r.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		if t.Amount.IsZero() {
			continue
		}
		if !grand.IsZero() {
			t.Percentage = t.Amount.Mul(hundred).Div(grand).InexactFloat64()
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
