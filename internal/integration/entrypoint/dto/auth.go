// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// SessionRequest is the body of POST /auth/refresh and POST /auth/logout.
type SessionRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries a token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is a token pair plus the signed-in account.
type AuthResponse struct {
	TokenResponse
	User AccountResponse `json:"user"`
}

type AccountResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func ToAuthResponse(access, refresh string, user *entity.User) AuthResponse {
	return AuthResponse{
		TokenResponse: TokenResponse{AccessToken: access, RefreshToken: refresh},
		User: AccountResponse{
			ID:          user.ID.String(),
			Email:       user.Email,
			Name:        user.Name,
			LastLoginAt: user.LastLoginAt,
			CreatedAt:   user.CreatedAt,
		},
	}
}
