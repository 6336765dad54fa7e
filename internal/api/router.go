package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/config"
	"github.com/Torido-Mir/CxC2026/internal/handler"
	"github.com/Torido-Mir/CxC2026/internal/middleware"
)

// Handlers groups the route handlers for wiring
type Handlers struct {
	Map          *handler.MapHandler
	Chat         *handler.ChatHandler
	Search       *handler.SearchHandler
	Export       *handler.ExportHandler
	Neighborhood *handler.NeighborhoodHandler
}

// SetupRouter builds the HTTP router
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS for the map frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "UHI Explorer API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret, cfg.AuthEnabled))
	{
		m := api.Group("/map")
		{
			m.GET("/state", h.Map.State)
			m.GET("/layers", h.Map.Layers)
			m.POST("/filters", h.Map.ApplyFilters)
			m.POST("/settlement", h.Map.SelectSettlement)
			m.POST("/view", h.Map.SetView)
			m.POST("/zoom", h.Map.SetZoom)
			m.POST("/reset", h.Map.Reset)

			draw := m.Group("/draw")
			{
				draw.POST("/arm", h.Map.ArmDraw)
				draw.POST("/begin", h.Map.DrawBegin)
				draw.POST("/update", h.Map.DrawUpdate)
				draw.POST("/finish", h.Map.DrawFinish)
			}

			m.GET("/cells/:index/detail", h.Map.CellDetail)
		}

		api.GET("/detail", h.Map.Detail)
		api.DELETE("/detail", h.Map.CloseDetail)

		api.GET("/neighborhoods", h.Neighborhood.List)
		api.GET("/neighborhoods/:name", h.Neighborhood.One)
		api.GET("/settlements", h.Neighborhood.Settlements)

		// External fan-out routes get a tighter limit
		external := middleware.RateLimit(30, time.Minute)
		api.GET("/search", external, h.Search.Search)
		api.POST("/chat", external, h.Chat.Send)

		api.GET("/export/buildings.csv", h.Export.Buildings)
	}

	return r
}
