package http

import (
	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/research", h.Research)
	}

	admin := api.Group("/webhooks")
	admin.Use(mw.AdminOnly())
	{
		admin.GET("", h.ListWebhooks)
		admin.POST("", h.CreateWebhook)
		admin.PUT("/:webhook_id", h.UpdateWebhook)
		admin.DELETE("/:webhook_id", h.DeleteWebhook)
	}
}
