package localstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

type expenseDoc struct {
	ID           uuid.UUID       `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	PaymentType  string          `json:"paymentType"`
	CardID       *uuid.UUID      `json:"cardId,omitempty"`
	CardNickname string          `json:"cardNickname,omitempty"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
	Description  string          `json:"description,omitempty"`
}

func expenseToDoc(e *entity.Expense) expenseDoc {
	return expenseDoc{
		ID:           e.ID,
		Amount:       e.Amount,
		Category:     e.Category,
		PaymentType:  string(e.PaymentType),
		CardID:       e.CardID,
		CardNickname: e.CardNickname,
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
		Description:  e.Description,
	}
}

func (d expenseDoc) toEntity(ownerID uuid.UUID) *entity.Expense {
	return &entity.Expense{
		ID:           d.ID,
		OwnerID:      ownerID,
		Amount:       d.Amount,
		Category:     d.Category,
		PaymentType:  entity.PaymentType(d.PaymentType),
		CardID:       d.CardID,
		CardNickname: d.CardNickname,
		Date:         d.Date,
		CreatedAt:    d.CreatedAt,
		Description:  d.Description,
	}
}

type categoryDoc struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IconName  string    `json:"iconName"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

func categoryToDoc(c *entity.Category) categoryDoc {
	return categoryDoc{ID: c.ID, Name: c.Name, IconName: c.IconName, IsDefault: c.IsDefault, CreatedAt: c.CreatedAt}
}

func (d categoryDoc) toEntity(ownerID uuid.UUID) *entity.Category {
	return &entity.Category{ID: d.ID, OwnerID: ownerID, Name: d.Name, IconName: d.IconName, IsDefault: d.IsDefault, CreatedAt: d.CreatedAt}
}

type cardDoc struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	LastFour  string    `json:"lastFour"`
	CreatedAt time.Time `json:"createdAt"`
}

func cardToDoc(c *entity.Card) cardDoc {
	return cardDoc{ID: c.ID, Nickname: c.Nickname, LastFour: c.LastFour, CreatedAt: c.CreatedAt}
}

func (d cardDoc) toEntity(ownerID uuid.UUID) *entity.Card {
	return &entity.Card{ID: d.ID, OwnerID: ownerID, Nickname: d.Nickname, LastFour: d.LastFour, CreatedAt: d.CreatedAt}
}

type budgetDoc struct {
	ID           uuid.UUID       `json:"id"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Period       string          `json:"period"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func budgetToDoc(b *entity.Budget) budgetDoc {
	return budgetDoc{ID: b.ID, CategoryName: b.CategoryName, Amount: b.Amount, Period: string(b.Period), CreatedAt: b.CreatedAt}
}

func (d budgetDoc) toEntity(ownerID uuid.UUID) *entity.Budget {
	return &entity.Budget{
		ID:           d.ID,
		OwnerID:      ownerID,
		CategoryName: d.CategoryName,
		Amount:       d.Amount,
		Period:       entity.BudgetPeriod(d.Period),
		CreatedAt:    d.CreatedAt,
	}
}

type limitDoc struct {
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type badgeDoc struct {
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
	Showcased     bool      `json:"showcased"`
}

type streakDoc struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastLogDate   string `json:"lastLogDate"`
}

type achievementDoc struct {
	UnlockedBadges []badgeDoc     `json:"unlockedBadges"`
	Streak         streakDoc      `json:"streak"`
	Stats          map[string]int `json:"stats"`
	HasUnseen      bool           `json:"hasUnseen"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func achievementToDoc(s *entity.AchievementState) achievementDoc {
	badges := make([]badgeDoc, len(s.UnlockedBadges))
	for i, b := range s.UnlockedBadges {
		badges[i] = badgeDoc{AchievementID: b.AchievementID, UnlockedAt: b.UnlockedAt, Showcased: b.Showcased}
	}
	stats := s.Stats
	if stats == nil {
		stats = map[string]int{}
	}
	return achievementDoc{
		UnlockedBadges: badges,
		Streak: streakDoc{
			CurrentStreak: s.Streak.CurrentStreak,
			LongestStreak: s.Streak.LongestStreak,
			LastLogDate:   s.Streak.LastLogDate,
		},
		Stats:     stats,
		HasUnseen: s.HasUnseen,
		UpdatedAt: s.UpdatedAt,
	}
}

func (d achievementDoc) toEntity(ownerID uuid.UUID) *entity.AchievementState {
	badges := make([]entity.UnlockedBadge, len(d.UnlockedBadges))
	for i, b := range d.UnlockedBadges {
		badges[i] = entity.UnlockedBadge{AchievementID: b.AchievementID, UnlockedAt: b.UnlockedAt, Showcased: b.Showcased}
	}
	stats := d.Stats
	if stats == nil {
		stats = map[string]int{}
	}
	return &entity.AchievementState{
		OwnerID:        ownerID,
		UnlockedBadges: badges,
		Streak: entity.Streak{
			CurrentStreak: d.Streak.CurrentStreak,
			LongestStreak: d.Streak.LongestStreak,
			LastLogDate:   d.Streak.LastLogDate,
		},
		Stats:     stats,
		HasUnseen: d.HasUnseen,
		UpdatedAt: d.UpdatedAt,
	}
}
