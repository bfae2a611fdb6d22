package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velotrace/zoneval/internal/config"
	"github.com/velotrace/zoneval/internal/handler"
	"github.com/velotrace/zoneval/internal/middleware"
	"github.com/velotrace/zoneval/internal/repository"
	"github.com/velotrace/zoneval/internal/service"
)

// SetupRouter wires the results API over the given database.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "zoneval results API is running",
		})
	})

	interactionHandler := handler.NewInteractionHandler(
		service.NewInteractionService(repository.NewInteractionRepository(db)))
	gridHandler := handler.NewGridHandler(
		service.NewGridService(repository.NewGridRepository(db)))
	runHandler := handler.NewRunHandler(
		service.NewRunService(repository.NewRunRepository(db)))

	limiter := middleware.NewRateLimiter(120, time.Minute)

	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		interactions := api.Group("/interactions")
		{
			interactions.GET("", interactionHandler.GetInteractions)
			interactions.GET("/summary", interactionHandler.GetSummary)
		}

		api.GET("/grid-cells", gridHandler.GetGridCells)

		runs := api.Group("/runs")
		{
			runs.GET("", runHandler.GetRuns)
			runs.GET("/:id", runHandler.GetRun)
		}
	}

	return r
}
