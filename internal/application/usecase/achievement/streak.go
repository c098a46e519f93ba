// Package achievement contains the streak tracker, the unlock evaluator and
// the achievement use cases.
package achievement

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// UpdateStreak applies one save on the calendar day of now. A second save on
// the same day leaves the streak unchanged; a save on the day after the last
// log extends it; any other gap restarts it at 1.
func UpdateStreak(streak entity.Streak, now time.Time) entity.Streak {
	today := now.Format(entity.StreakDateLayout)
	if streak.LastLogDate == today {
		return streak
	}

	yesterday := now.AddDate(0, 0, -1).Format(entity.StreakDateLayout)
	if streak.LastLogDate == yesterday {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastLogDate = today
	return streak
}
