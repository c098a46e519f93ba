// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeDriver        string
	storeHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Store       string `json:"store"`
	StoreStatus string `json:"store_status"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeDriver string, storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeDriver:        storeDriver,
		storeHealthChecker: storeHealthChecker,
	}
}

// Check handles GET /health requests.
// It reports whether the configured record store answers.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		storeStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Store:       h.storeDriver,
		StoreStatus: storeStatus,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
