// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/application/usecase/achievement"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ShowcaseRequest represents the request body for toggling a badge's showcase flag.
type ShowcaseRequest struct {
	Showcased *bool `json:"showcased" binding:"required"`
}

// AchievementResponse represents a single achievement in API responses.
type AchievementResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Difficulty      string     `json:"difficulty"`
	Category        string     `json:"category"`
	IconKey         string     `json:"icon_key"`
	RequirementKind string     `json:"requirement_kind"`
	Supported       bool       `json:"supported"`
	Unlocked        bool       `json:"unlocked"`
	UnlockedAt      *time.Time `json:"unlocked_at,omitempty"`
	Showcased       bool       `json:"showcased"`
}

// AchievementBoardResponse represents the achievement board.
type AchievementBoardResponse struct {
	Achievements   []AchievementResponse `json:"achievements"`
	Streak         StreakResponse        `json:"streak"`
	UnlockedCount  int                   `json:"unlocked_count"`
	ShowcasedCount int                   `json:"showcased_count"`
	HasUnseen      bool                  `json:"has_unseen"`
}

// ShowcaseResponse represents a badge after a showcase change.
type ShowcaseResponse struct {
	AchievementID  string    `json:"achievement_id"`
	UnlockedAt     time.Time `json:"unlocked_at"`
	Showcased      bool      `json:"showcased"`
	ShowcasedCount int       `json:"showcased_count"`
}

// ToAchievementDefinitionResponse converts a catalog entry that was just unlocked.
func ToAchievementDefinitionResponse(def entity.AchievementDefinition) AchievementResponse {
	return AchievementResponse{
		ID:              def.ID,
		Name:            def.Name,
		Description:     def.Description,
		Difficulty:      string(def.Difficulty),
		Category:        string(def.Category),
		IconKey:         def.IconKey,
		RequirementKind: string(def.Requirement.Kind()),
		Supported:       true,
		Unlocked:        true,
	}
}

// ToAchievementBoardResponse converts the board output.
func ToAchievementBoardResponse(output *achievement.ListAchievementsOutput) AchievementBoardResponse {
	items := make([]AchievementResponse, len(output.Achievements))
	for i, item := range output.Achievements {
		items[i] = AchievementResponse{
			ID:              item.Definition.ID,
			Name:            item.Definition.Name,
			Description:     item.Definition.Description,
			Difficulty:      string(item.Definition.Difficulty),
			Category:        string(item.Definition.Category),
			IconKey:         item.Definition.IconKey,
			RequirementKind: string(item.Definition.Requirement.Kind()),
			Supported:       item.Supported,
			Unlocked:        item.Unlocked,
			UnlockedAt:      item.UnlockedAt,
			Showcased:       item.Showcased,
		}
	}
	return AchievementBoardResponse{
		Achievements:   items,
		Streak:         ToStreakResponse(output.Streak),
		UnlockedCount:  output.UnlockedCount,
		ShowcasedCount: output.ShowcasedCount,
		HasUnseen:      output.HasUnseen,
	}
}

// ToShowcaseResponse converts the toggle output.
func ToShowcaseResponse(output *achievement.ToggleShowcaseOutput) ShowcaseResponse {
	return ShowcaseResponse{
		AchievementID:  output.Badge.AchievementID,
		UnlockedAt:     output.Badge.UnlockedAt,
		Showcased:      output.Badge.Showcased,
		ShowcasedCount: output.ShowcasedCount,
	}
}
