package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

type stubIssuer struct {
	adapter.TokenIssuer
	ownerID uuid.UUID
}

func (s stubIssuer) VerifyAccess(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{OwnerID: s.ownerID}, nil
}

func newAuthRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", m.Authenticate(), func(c *gin.Context) {
		ownerID, ok := GetOwnerIDFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, ownerID.String())
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	ownerID := uuid.New()
	guestID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := []struct {
		name       string
		guest      bool
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: ownerID.String()},
		{name: "guest without header", guest: true, header: "", wantStatus: http.StatusOK, wantBody: guestID.String()},
		{name: "guest mode still checks tokens", guest: true, header: "Bearer bad", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(stubIssuer{ownerID: ownerID})
			if tt.guest {
				m.WithGuestOwner(guestID)
			}
			r := newAuthRouter(m)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRateLimiter_Memory(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	start := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return start }

	for i := 0; i < 2; i++ {
		if ok, _ := rl.hitMemory("login|1.2.3.4"); !ok {
			t.Fatalf("expected attempt %d to pass", i+1)
		}
	}
	ok, retryAfter := rl.hitMemory("login|1.2.3.4")
	if ok {
		t.Error("expected third attempt to be limited")
	}
	if retryAfter != time.Minute {
		t.Errorf("expected retry after 1m, got %v", retryAfter)
	}
	if ok, _ := rl.hitMemory("login|5.6.7.8"); !ok {
		t.Error("expected a different client to pass")
	}

	rl.now = func() time.Time { return start.Add(time.Minute) }
	if ok, _ := rl.hitMemory("login|1.2.3.4"); !ok {
		t.Error("expected attempt to pass in the next window")
	}
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(2, time.Minute).WithRedis(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := rl.hit(ctx, "login|1.2.3.4"); !ok {
			t.Fatalf("expected attempt %d to pass", i+1)
		}
	}
	if ok, retryAfter := rl.hit(ctx, "login|1.2.3.4"); ok || retryAfter <= 0 {
		t.Errorf("expected third attempt to be limited with a retry delay, got %v %v", ok, retryAfter)
	}
	if !mr.Exists(rateLimitKeyPrefix + "login|1.2.3.4") {
		t.Error("expected the counter to live in redis")
	}

	mr.FastForward(2 * time.Minute)
	if ok, _ := rl.hit(ctx, "login|1.2.3.4"); !ok {
		t.Error("expected attempt to pass once the window expired")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		limit      int
		wantStatus []int
	}{
		{"limited", 1, []int{http.StatusOK, http.StatusTooManyRequests}},
		{"disabled", 0, []int{http.StatusOK, http.StatusOK, http.StatusOK}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/login", NewRateLimiter(tt.limit, time.Minute).Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

			for i, want := range tt.wantStatus {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
				if w.Code != want {
					t.Errorf("request %d: expected %d, got %d", i+1, want, w.Code)
				}
				if want == http.StatusTooManyRequests && w.Header().Get("Retry-After") != "60" {
					t.Errorf("expected Retry-After 60, got %q", w.Header().Get("Retry-After"))
				}
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantCode  string
	}{
		{"Bearer abc.def", "abc.def", ""},
		{"Bearer   padded ", "padded", ""},
		{"", "", "AUTH-030003"},
		{"Bearer ", "", "AUTH-030003"},
		{"bearer abc", "", "AUTH-030001"},
		{"Token abc", "", "AUTH-030001"},
	}

	for _, tt := range tests {
		token, code, _ := bearerToken(tt.header)
		if token != tt.wantToken || string(code) != tt.wantCode {
			t.Errorf("bearerToken(%q) = %q, %q; want %q, %q", tt.header, token, code, tt.wantToken, tt.wantCode)
		}
	}
}
