// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// OwnerIDKey is the context key for the authenticated ledger owner.
const OwnerIDKey ContextKey = "owner_id"

// AuthMiddleware resolves the ledger owner of a request. With a guest owner
// configured, requests without an Authorization header act as that owner.
type AuthMiddleware struct {
	tokens       adapter.TokenIssuer
	guestOwnerID uuid.UUID
}

func NewAuthMiddleware(tokens adapter.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// WithGuestOwner enables guest access for requests that carry no token.
func (m *AuthMiddleware) WithGuestOwner(ownerID uuid.UUID) *AuthMiddleware {
	m.guestOwnerID = ownerID
	return m
}

// Authenticate returns the Gin handler that sets OwnerIDKey or aborts with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" && m.guestOwnerID != uuid.Nil {
			c.Set(string(OwnerIDKey), m.guestOwnerID)
			c.Next()
			return
		}

		token, code, reason := bearerToken(header)
		if token == "" {
			unauthorized(c, code, reason)
			return
		}

		claims, err := m.tokens.VerifyAccess(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(string(OwnerIDKey), claims.OwnerID)
		c.Next()
	}
}

// bearerToken extracts the token of a "Bearer <token>" header, or explains
// why there is none.
func bearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	if header == "" {
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func unauthorized(c *gin.Context, code domainerror.AuthErrorCode, reason string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: reason, Code: string(code)})
}

// GetOwnerIDFromContext extracts the ledger owner from the Gin context.
func GetOwnerIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(string(OwnerIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
