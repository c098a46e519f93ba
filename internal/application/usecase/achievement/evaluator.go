package achievement

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// IsSupported reports whether the evaluator has an unlock rule for req.
func IsSupported(req entity.Requirement) bool {
	switch req.(type) {
	case entity.UnderLimitDays, entity.UnderLimitPercentage, entity.RecoveryFromOverLimit,
		entity.ZeroSpendDay, entity.AnalyticsViews:
		return false
	}
	return true
}

// Check evaluates one requirement against the workspace. Catalogued kinds
// without an unlock rule return domainerror.ErrRequirementNotSupported.
func Check(req entity.Requirement, ws *workspace.Workspace, now time.Time) (bool, error) {
	switch r := req.(type) {
	case entity.TransactionCount:
		return len(ws.Expenses) >= r.Target, nil

	case entity.ConsecutiveDays:
		return ws.Achievements.Streak.CurrentStreak >= r.Target, nil

	case entity.CategoryCount:
		count := 0
		for _, e := range ws.Expenses {
			if e.Category == r.Category {
				count++
			}
		}
		return count >= r.Target, nil

	case entity.SingleTransactionAmount:
		for _, e := range ws.Expenses {
			if e.Amount.GreaterThanOrEqual(r.Target) {
				return true, nil
			}
		}
		return false, nil

	case entity.CardCount:
		return len(ws.Cards) >= r.Target, nil

	case entity.CustomCategoryCount:
		count := 0
		for _, c := range ws.Categories {
			if !c.IsDefault {
				count++
			}
		}
		return count >= r.Target, nil

	case entity.SpendingLimitSet:
		return ws.Limit != nil && ws.Limit.Amount.IsPositive(), nil

	case entity.TransactionsWithDescription:
		count := 0
		for _, e := range ws.Expenses {
			if strings.TrimSpace(e.Description) != "" {
				count++
			}
		}
		return count >= r.Target, nil

	case entity.AllDefaultCategories:
		seen := map[string]struct{}{}
		for _, e := range ws.Expenses {
			if entity.IsDefaultCategoryName(e.Category) {
				seen[e.Category] = struct{}{}
			}
		}
		return len(seen) >= r.Target, nil

	case entity.TimeBased:
		// Last appended record, not the latest by date.
		if len(ws.Expenses) == 0 {
			return false, nil
		}
		last := ws.Expenses[len(ws.Expenses)-1]
		hour := last.Date.In(now.Location()).Hour()
		if r.Comparison == entity.TimeBefore {
			return hour < r.Hour, nil
		}
		return hour >= r.Hour, nil

	case entity.UnderLimitDays, entity.UnderLimitPercentage, entity.RecoveryFromOverLimit,
		entity.ZeroSpendDay, entity.AnalyticsViews:
		return false, domainerror.ErrRequirementNotSupported
	}
	return false, domainerror.ErrRequirementNotSupported
}

// Evaluate unlocks every catalog entry whose requirement now holds and returns
// the newly unlocked definitions in catalog order. Already unlocked entries
// are skipped, so unlocks are permanent.
func Evaluate(ws *workspace.Workspace, now time.Time) []entity.AchievementDefinition {
	unlocked := []entity.AchievementDefinition{}
	for _, def := range entity.AchievementCatalog() {
		if ws.Achievements.IsUnlocked(def.ID) {
			continue
		}

		ok, err := Check(def.Requirement, ws, now)
		if err != nil {
			slog.Debug("Achievement requirement not evaluated",
				"achievement_id", def.ID,
				"requirement", def.Requirement.Kind(),
				"error", err,
			)
			continue
		}
		if !ok {
			continue
		}

		if ws.Achievements.Unlock(def.ID, now) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
