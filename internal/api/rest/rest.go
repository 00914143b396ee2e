package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/wearmarket/marketplace-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes (read-only, API key required)
	v1 := router.Group("/api/v1", middleware.APIKeyAuth(authCfg))
	{
		v1.GET("/counts/:network", handler.GetCount)
		v1.GET("/analytics/day", handler.ListAnalyticsDayData)
		v1.GET("/items/:id/day", handler.ListItemDayData)
		v1.GET("/accounts/:address/day", handler.ListAccountDayData)
		v1.GET("/sales", handler.ListSales)
	}
}
