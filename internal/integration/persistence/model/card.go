// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CardModel represents the cards table in the database.
type CardModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Nickname  string    `gorm:"type:varchar(100);not null"`
	LastFour  string    `gorm:"type:varchar(4);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	return &entity.Card{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Nickname:  m.Nickname,
		LastFour:  m.LastFour,
		CreatedAt: m.CreatedAt,
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	return &CardModel{
		ID:        card.ID,
		OwnerID:   card.OwnerID,
		Nickname:  card.Nickname,
		LastFour:  card.LastFour,
		CreatedAt: card.CreatedAt,
	}
}
