package api

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncaldwell/flightmap-backend-go/internal/config"
	"github.com/ncaldwell/flightmap-backend-go/internal/handler"
	"github.com/ncaldwell/flightmap-backend-go/internal/middleware"
)

//go:embed static/index.html
var indexHTML []byte

// SetupRouter builds the HTTP surface: the dashboard page at /, the JSON API
// under /api/v1, and the JWT-guarded admin group.
func SetupRouter(cfg *config.Config, figureHandler *handler.FigureHandler, datasetHandler *handler.DatasetHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Dashboard page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Flight routes map backend is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		api.GET("/filters", datasetHandler.GetFilterOptions)
		api.GET("/figure", figureHandler.GetFigure)
		api.GET("/routes", figureHandler.GetRouteCounts)
		api.GET("/cities", figureHandler.GetCitySummaries)
		api.GET("/stats/summary", datasetHandler.GetSummary)

		admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
		{
			admin.POST("/reload", datasetHandler.Reload)
		}
	}

	return r
}
