// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxShowcasedBadges is the number of badges that may be showcased at once.
const MaxShowcasedBadges = 3

// StreakDateLayout is the date-only layout used for LastLogDate.
const StreakDateLayout = "2006-01-02"

// Stat keys recorded in AchievementState.Stats.
const (
	StatExpensesLogged = "expenses_logged"
	StatAnalyticsViews = "analytics_views"
)

// UnlockedBadge records a permanently unlocked achievement.
type UnlockedBadge struct {
	AchievementID string
	UnlockedAt    time.Time
	Showcased     bool
}

// Streak tracks consecutive calendar days with at least one logged expense.
type Streak struct {
	CurrentStreak int
	LongestStreak int
	LastLogDate   string // YYYY-MM-DD in the owner's local time, empty when never logged
}

// AchievementState is the gamification ledger of an owner.
type AchievementState struct {
	OwnerID        uuid.UUID
	UnlockedBadges []UnlockedBadge
	Streak         Streak
	Stats          map[string]int
	HasUnseen      bool
	UpdatedAt      time.Time
}

// NewAchievementState returns the zero ledger used when none is stored yet.
func NewAchievementState(ownerID uuid.UUID) *AchievementState {
	return &AchievementState{
		OwnerID:        ownerID,
		UnlockedBadges: []UnlockedBadge{},
		Stats:          map[string]int{},
		UpdatedAt:      time.Now().UTC(),
	}
}

// IsUnlocked reports whether achievementID has already been unlocked.
func (s *AchievementState) IsUnlocked(achievementID string) bool {
	return s.badgeIndex(achievementID) >= 0
}

// Badge returns the unlocked badge for achievementID, if any.
func (s *AchievementState) Badge(achievementID string) (UnlockedBadge, bool) {
	i := s.badgeIndex(achievementID)
	if i < 0 {
		return UnlockedBadge{}, false
	}
	return s.UnlockedBadges[i], true
}

// ShowcasedCount returns how many badges are currently showcased.
func (s *AchievementState) ShowcasedCount() int {
	count := 0
	for _, b := range s.UnlockedBadges {
		if b.Showcased {
			count++
		}
	}
	return count
}

// Unlock appends a badge. The first MaxShowcasedBadges unlocks are showcased
// automatically. Unlocking an already unlocked achievement is a no-op.
func (s *AchievementState) Unlock(achievementID string, at time.Time) bool {
	if s.IsUnlocked(achievementID) {
		return false
	}
	s.UnlockedBadges = append(s.UnlockedBadges, UnlockedBadge{
		AchievementID: achievementID,
		UnlockedAt:    at,
		Showcased:     len(s.UnlockedBadges) < MaxShowcasedBadges,
	})
	return true
}

// SetShowcased updates the showcase flag of an unlocked badge. Setting is only
// allowed while fewer than MaxShowcasedBadges are showcased; unsetting always
// succeeds. It returns false when the change is refused.
func (s *AchievementState) SetShowcased(achievementID string, showcased bool) bool {
	i := s.badgeIndex(achievementID)
	if i < 0 {
		return false
	}
	if !showcased {
		s.UnlockedBadges[i].Showcased = false
		return true
	}
	if s.UnlockedBadges[i].Showcased {
		return true
	}
	if s.ShowcasedCount() >= MaxShowcasedBadges {
		return false
	}
	s.UnlockedBadges[i].Showcased = true
	return true
}

// IncrementStat bumps a write-only counter.
func (s *AchievementState) IncrementStat(key string) {
	if s.Stats == nil {
		s.Stats = map[string]int{}
	}
	s.Stats[key]++
}

func (s *AchievementState) badgeIndex(achievementID string) int {
	for i, b := range s.UnlockedBadges {
		if b.AchievementID == achievementID {
			return i
		}
	}
	return -1
}
