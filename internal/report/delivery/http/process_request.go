package http

import (
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report"
	"market-intel-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// processReportRunRequest binds the raw automation payload without a
// typed request struct: field problems must surface as structured
// validation errors, not a bind failure.
func (h *handler) processReportRunRequest(c *gin.Context) (map[string]any, error) {
	var payload map[string]any

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processReportRunRequest: ShouldBindJSON failed: %v", err)
		return nil, errInvalidBody
	}

	return payload, nil
}

func (h *handler) processSaveOnDemandRequest(c *gin.Context) (saveOnDemandReq, error) {
	var req saveOnDemandReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processSaveOnDemandRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidQuery
	}
	if err := c.ShouldBindQuery(&req.Page); err != nil {
		return req, model.Scope{}, errInvalidQuery
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processScheduleReportsRequest(c *gin.Context) (string, model.Scope, error) {
	scheduleID := c.Param("schedule_id")
	if scheduleID == "" {
		return "", model.Scope{}, h.mapError(report.ErrScheduleIDMissing)
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return scheduleID, sc, nil
}

func (h *handler) processExecutionIDRequest(c *gin.Context) (string, model.Scope, error) {
	executionID := c.Param("execution_id")
	if executionID == "" {
		return "", model.Scope{}, errExecutionIDMissing
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return executionID, sc, nil
}
