package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	service PassService
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service PassService, version string) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
	}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Pass    struct {
		Running bool `json:"running"`
	} `json:"pass"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	response.Pass.Running = h.service.IsRunning()

	c.JSON(http.StatusOK, response)
}
