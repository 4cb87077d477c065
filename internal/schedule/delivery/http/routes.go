package http

import (
	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/schedules")
	api.Use(mw.Auth())
	{
		api.GET("/active", h.ListActive)
		api.GET("/all", mw.AdminOnly(), h.ListAll)
		api.PATCH("/:schedule_id/pause", h.Pause)
		api.PATCH("/:schedule_id/resume", h.Resume)
		api.DELETE("/:schedule_id", h.Delete)
	}
}
