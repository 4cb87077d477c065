package http

import (
	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")

	// Automation callers (the webhook engine) authenticate with the
	// shared internal key, not a user token.
	internal := api.Group("")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/report-run", h.ReportRun)
		internal.POST("/reports/on-demand", h.SaveOnDemand)
	}

	reports := api.Group("/reports")
	reports.Use(mw.Auth())
	{
		reports.GET("", h.ListReports)
		reports.GET("/schedule/:schedule_id", h.ListBySchedule)
		reports.GET("/:execution_id", h.GetReport)
		reports.DELETE("/:execution_id", h.DeleteReport)
	}
}
