// Package insight computes the rotating fact cards of the insights panel.
package insight

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// Window is the rolling span most generators look at.
const Window = 30 * 24 * time.Hour

// NoDataValue is the Value of every placeholder card.
const NoDataValue = "No data yet"

// Count is the number of generators and the rotation modulus.
const Count = 5

// Insight is one fact card.
type Insight struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	IconKey  string `json:"icon_key"`
	Empty    bool   `json:"empty"`
}

func placeholder(title, subtitle, icon string) Insight {
	return Insight{Title: title, Value: NoDataValue, Subtitle: subtitle, IconKey: icon, Empty: true}
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// recent returns the records of the last 30 days, measured as an exact
// duration from now rather than from a day boundary.
func recent(records []*entity.Expense, now time.Time) []*entity.Expense {
	return analytics.FilterSince(records, now.Add(-Window)).Records
}

// MostExpensiveDay reports the calendar day with the highest total in the
// last 30 days. The first day reaching the maximum wins.
func MostExpensiveDay(records []*entity.Expense, now time.Time) Insight {
	const title, icon = "Most expensive day", "calendar"
	window := recent(records, now)
	if len(window) == 0 {
		return placeholder(title, "Log expenses to find your priciest day", icon)
	}

	type day struct {
		date  time.Time
		total decimal.Decimal
	}
	index := map[string]int{}
	days := []day{}
	for _, r := range window {
		local := r.Date.In(now.Location())
		key := local.Format(entity.StreakDateLayout)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, day{date: local, total: decimal.Zero})
		}
		days[i].total = days[i].total.Add(r.Amount)
	}

	best := days[0]
	for _, d := range days[1:] {
		if d.total.GreaterThan(best.total) {
			best = d
		}
	}

	return Insight{
		Title:    title,
		Value:    formatAmount(best.total),
		Subtitle: best.date.Format("Monday, January 2"),
		IconKey:  icon,
	}
}

// WeekendVsWeekday compares weekend and weekday totals of the last 30 days.
func WeekendVsWeekday(records []*entity.Expense, now time.Time) Insight {
	const title, icon = "Weekend vs weekday", "scales"
	window := recent(records, now)
	if len(window) == 0 {
		return placeholder(title, "Log expenses to compare your week", icon)
	}

	weekend, weekday := decimal.Zero, decimal.Zero
	for _, r := range window {
		switch r.Date.In(now.Location()).Weekday() {
		case time.Saturday, time.Sunday:
			weekend = weekend.Add(r.Amount)
		default:
			weekday = weekday.Add(r.Amount)
		}
	}

	out := Insight{Title: title, IconKey: icon}
	switch {
	case weekend.IsZero() && weekday.IsZero():
		out.Value = "0%"
		out.Subtitle = "Nothing spent on weekends or weekdays"
	case weekend.IsZero():
		out.Value = "100%"
		out.Subtitle = "All spending happened on weekdays"
	case weekday.IsZero():
		out.Value = "100%"
		out.Subtitle = "All spending happened on weekends"
	case weekend.Equal(weekday):
		out.Value = "0%"
		out.Subtitle = "Weekends and weekdays cost the same"
	case weekend.GreaterThan(weekday):
		out.Value = relativeDifference(weekend, weekday)
		out.Subtitle = "more on weekends"
	default:
		out.Value = relativeDifference(weekday, weekend)
		out.Subtitle = "more on weekdays"
	}
	return out
}

// relativeDifference renders round((larger/smaller - 1) * 100) as a percentage.
func relativeDifference(larger, smaller decimal.Decimal) string {
	pct := larger.Div(smaller).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(0)
	return pct.String() + "%"
}

// TopCategoryThisMonth reports the highest-spend category of the current
// calendar month. It is not a rolling window.
func TopCategoryThisMonth(records []*entity.Expense, now time.Time) Insight {
	const title, icon = "Top category this month", "crown"
	year, month, _ := now.Date()

	current := []*entity.Expense{}
	for _, r := range records {
		y, m, _ := r.Date.In(now.Location()).Date()
		if y == year && m == month {
			current = append(current, r)
		}
	}
	if len(current) == 0 {
		return placeholder(title, "Nothing logged this month", icon)
	}

	index := map[string]int{}
	names := []string{}
	totals := []decimal.Decimal{}
	for _, r := range current {
		i, ok := index[r.Category]
		if !ok {
			i = len(names)
			index[r.Category] = i
			names = append(names, r.Category)
			totals = append(totals, decimal.Zero)
		}
		totals[i] = totals[i].Add(r.Amount)
	}

	best := 0
	for i := 1; i < len(totals); i++ {
		if totals[i].GreaterThan(totals[best]) {
			best = i
		}
	}

	return Insight{
		Title:    title,
		Value:    names[best],
		Subtitle: fmt.Sprintf("%s spent in %s", formatAmount(totals[best]), month),
		IconKey:  icon,
	}
}

// AverageTransaction reports the mean amount over the last 30 days.
func AverageTransaction(records []*entity.Expense, now time.Time) Insight {
	const title, icon = "Average transaction", "receipt"
	filtered := analytics.FilterSince(records, now.Add(-Window))
	if len(filtered.Records) == 0 {
		return placeholder(title, "Log expenses to see your average", icon)
	}

	count := len(filtered.Records)
	mean := filtered.Total.Div(decimal.NewFromInt(int64(count)))
	noun := "transactions"
	if count == 1 {
		noun = "transaction"
	}
	return Insight{
		Title:    title,
		Value:    formatAmount(mean),
		Subtitle: fmt.Sprintf("across %d %s in the last 30 days", count, noun),
		IconKey:  icon,
	}
}

var streakBands = []struct {
	min     int
	message string
}{
	{30, "Legendary consistency"},
	{14, "Unstoppable, keep it going"},
	{7, "A full week and counting"},
	{3, "Building a habit"},
	{0, "Every streak starts with one day"},
}

// StreakInsight maps the live streak into one of five message bands.
func StreakInsight(streak entity.Streak) Insight {
	const title, icon = "Logging streak", "flame"
	if streak.CurrentStreak <= 0 {
		return placeholder(title, "Log an expense to start a streak", icon)
	}

	unit := "days"
	if streak.CurrentStreak == 1 {
		unit = "day"
	}
	out := Insight{
		Title:   title,
		Value:   fmt.Sprintf("%d %s", streak.CurrentStreak, unit),
		IconKey: icon,
	}
	for _, band := range streakBands {
		if streak.CurrentStreak >= band.min {
			out.Subtitle = band.message
			break
		}
	}
	return out
}

// Generate runs all five generators in rotation order.
func Generate(records []*entity.Expense, streak entity.Streak, now time.Time) []Insight {
	return []Insight{
		MostExpensiveDay(records, now),
		WeekendVsWeekday(records, now),
		TopCategoryThisMonth(records, now),
		AverageTransaction(records, now),
		StreakInsight(streak),
	}
}
