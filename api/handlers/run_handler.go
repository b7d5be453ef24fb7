package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/app"
	"github.com/yourusername/gifsync/internal/domain"
)

// PassService is what the HTTP layer needs from the sync service
type PassService interface {
	IsRunning() bool
	StartPass(ctx context.Context, providerNames []string) ([]string, error)
	Coverage() app.Coverage
	GetRun(id string) (*domain.Run, error)
	ListRuns(limit int) ([]*domain.Run, error)
}

// RunHandler handles pass and coverage requests
type RunHandler struct {
	service PassService
	baseCtx context.Context // passes outlive the request that started them
	logger  *zap.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(baseCtx context.Context, service PassService, logger *zap.Logger) *RunHandler {
	return &RunHandler{
		service: service,
		baseCtx: baseCtx,
		logger:  logger,
	}
}

// StartRunRequest represents a request to start a pass
type StartRunRequest struct {
	Providers []string `json:"providers,omitempty"`
}

// StartRun handles POST /api/v1/runs
func (h *RunHandler) StartRun(c *gin.Context) {
	var req StartRunRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	providers, err := h.service.StartPass(h.baseCtx, req.Providers)
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, domain.ErrUnknownProvider):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("Failed to start pass", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":    "started",
		"providers": providers,
	})
}

// ListRuns handles GET /api/v1/runs
func (h *RunHandler) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	runs, err := h.service.ListRuns(limit)
	if err != nil {
		h.logger.Error("Failed to list runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunHandler) GetRun(c *gin.Context) {
	run, err := h.service.GetRun(c.Param("id"))
	if errors.Is(err, domain.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to get run", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetCoverage handles GET /api/v1/coverage
func (h *RunHandler) GetCoverage(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Coverage())
}
