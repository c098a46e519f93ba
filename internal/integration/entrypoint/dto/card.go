// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for card creation.
type CreateCardRequest struct {
	Nickname string `json:"nickname" binding:"required,max=100"`
	LastFour string `json:"last_four" binding:"required"`
}

// CardResponse represents a single card in API responses.
type CardResponse struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	LastFour  string    `json:"last_four"`
	CreatedAt time.Time `json:"created_at"`
}

// CardListResponse represents the response for listing cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToCardResponse converts a domain Card entity to a CardResponse DTO.
func ToCardResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:        card.ID.String(),
		Nickname:  card.Nickname,
		LastFour:  card.LastFour,
		CreatedAt: card.CreatedAt,
	}
}

// ToCardListResponse converts a list of cards.
func ToCardListResponse(cards []*entity.Card) CardListResponse {
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = ToCardResponse(c)
	}
	return CardListResponse{Cards: out}
}
