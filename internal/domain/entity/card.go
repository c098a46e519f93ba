// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a payment card the user can attach to card expenses.
type Card struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Nickname  string
	LastFour  string
	CreatedAt time.Time
}

// NewCard creates a new Card entity.
func NewCard(ownerID uuid.UUID, nickname, lastFour string) *Card {
	return &Card{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Nickname:  nickname,
		LastFour:  lastFour,
		CreatedAt: time.Now().UTC(),
	}
}
