package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// AccountModel is a row of the users table. Email holds the normalized
// address.
type AccountModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	LastLoginAt  *time.Time `gorm:"default:null"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

func (AccountModel) TableName() string {
	return "users"
}

func (m *AccountModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func AccountFromEntity(user *entity.User) *AccountModel {
	return &AccountModel{
		ID:           user.ID,
		Email:        entity.NormalizeEmail(user.Email),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// SessionModel is a refresh-token session keyed by the token's JWT ID. The
// token itself is never stored.
type SessionModel struct {
	ID        string     `gorm:"type:varchar(64);primaryKey"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"default:null"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

func SessionFromEntity(session *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        session.ID,
		OwnerID:   session.OwnerID,
		ExpiresAt: session.ExpiresAt,
		RevokedAt: session.RevokedAt,
		CreatedAt: session.CreatedAt,
	}
}
