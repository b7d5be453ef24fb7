package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/gifsync/api/handlers"
	"github.com/yourusername/gifsync/api/middleware"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRouter sets up the HTTP router. Passes started over HTTP run under baseCtx.
func SetupRouter(baseCtx context.Context, service handlers.PassService, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	healthHandler := handlers.NewHealthHandler(service, Version)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		runHandler := handlers.NewRunHandler(baseCtx, service, log)
		v1.GET("/coverage", runHandler.GetCoverage)

		runs := v1.Group("/runs")
		{
			runs.POST("", runHandler.StartRun)
			runs.GET("", runHandler.ListRuns)
			runs.GET("/:id", runHandler.GetRun)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "not found"})
	})

	return router
}
