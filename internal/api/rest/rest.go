package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/commercekit/event-delivery/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes (all authenticated)
	v1 := router.Group("/v1")
	v1.Use(middleware.Auth(authCfg))
	{
		// App registration
		v1.POST("/apps", handler.CreateApp)

		// Webhook registration CRUD
		v1.POST("/webhooks", handler.CreateWebhook)
		v1.GET("/webhooks/:id", handler.GetWebhook)
		v1.PATCH("/webhooks/:id", handler.UpdateWebhook)
		v1.DELETE("/webhooks/:id", handler.DeleteWebhook)

		// Delivery inspection and manual retry
		v1.GET("/webhooks/:id/deliveries", handler.ListWebhookDeliveries)
		v1.GET("/deliveries/:id", handler.GetDelivery)
		v1.POST("/deliveries/:id/retry", handler.RetryDelivery)
	}
}
