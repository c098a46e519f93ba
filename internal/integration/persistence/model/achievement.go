// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BadgeJSON is the stored shape of one unlocked badge.
type BadgeJSON struct {
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
	Showcased     bool      `json:"showcased"`
}

// BadgeList is stored as a JSON text column.
type BadgeList []BadgeJSON

// Value implements the driver.Valuer interface.
func (l BadgeList) Value() (driver.Value, error) {
	if l == nil {
		l = BadgeList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (l *BadgeList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// StatMap is stored as a JSON text column.
type StatMap map[string]int

// Value implements the driver.Valuer interface.
func (m StatMap) Value() (driver.Value, error) {
	if m == nil {
		m = StatMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (m *StatMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

// AchievementStateModel represents the achievement_states table, one row per owner.
type AchievementStateModel struct {
	OwnerID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Badges        BadgeList `gorm:"type:text;not null"`
	Stats         StatMap   `gorm:"type:text;not null"`
	CurrentStreak int       `gorm:"not null;default:0"`
	LongestStreak int       `gorm:"not null;default:0"`
	LastLogDate   string    `gorm:"type:varchar(10)"`
	HasUnseen     bool      `gorm:"not null;default:false"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AchievementStateModel.
func (AchievementStateModel) TableName() string {
	return "achievement_states"
}

// ToEntity converts an AchievementStateModel to a domain AchievementState.
func (m *AchievementStateModel) ToEntity() *entity.AchievementState {
	badges := make([]entity.UnlockedBadge, len(m.Badges))
	for i, b := range m.Badges {
		badges[i] = entity.UnlockedBadge{
			AchievementID: b.AchievementID,
			UnlockedAt:    b.UnlockedAt,
			Showcased:     b.Showcased,
		}
	}
	stats := make(map[string]int, len(m.Stats))
	for k, v := range m.Stats {
		stats[k] = v
	}
	return &entity.AchievementState{
		OwnerID:        m.OwnerID,
		UnlockedBadges: badges,
		Streak: entity.Streak{
			CurrentStreak: m.CurrentStreak,
			LongestStreak: m.LongestStreak,
			LastLogDate:   m.LastLogDate,
		},
		Stats:     stats,
		HasUnseen: m.HasUnseen,
		UpdatedAt: m.UpdatedAt,
	}
}

// AchievementStateFromEntity creates an AchievementStateModel from a domain AchievementState.
func AchievementStateFromEntity(state *entity.AchievementState) *AchievementStateModel {
	badges := make(BadgeList, len(state.UnlockedBadges))
	for i, b := range state.UnlockedBadges {
		badges[i] = BadgeJSON{
			AchievementID: b.AchievementID,
			UnlockedAt:    b.UnlockedAt,
			Showcased:     b.Showcased,
		}
	}
	return &AchievementStateModel{
		OwnerID:       state.OwnerID,
		Badges:        badges,
		Stats:         StatMap(state.Stats),
		CurrentStreak: state.Streak.CurrentStreak,
		LongestStreak: state.Streak.LongestStreak,
		LastLogDate:   state.Streak.LastLogDate,
		HasUnseen:     state.HasUnseen,
		UpdatedAt:     state.UpdatedAt,
	}
}

// InsightCursorModel represents the insight_cursors table, one row per owner.
type InsightCursorModel struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Index     int       `gorm:"column:cursor_index;not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the InsightCursorModel.
func (InsightCursorModel) TableName() string {
	return "insight_cursors"
}

// All returns every model managed by the ledger, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&AccountModel{},
		&SessionModel{},
		&CategoryModel{},
		&ExpenseModel{},
		&CardModel{},
		&BudgetModel{},
		&SpendingLimitModel{},
		&AchievementStateModel{},
		&InsightCursorModel{},
	}
}
