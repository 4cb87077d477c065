package http

import (
	"market-intel-srv/internal/report"
	"market-intel-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Log a recurring report execution
// @Description Validate and persist one execution of a recurring schedule, reconciling the caller's first-run claim against stored history
// @Tags Report
// @Accept json
// @Produce json
// @Param body body map[string]interface{} true "Report run payload"
// @Success 200 {object} reportRunResp
// @Failure 400 {object} response.ErrResp
// @Failure 401 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/report-run [post]
func (h *handler) ReportRun(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.processReportRunRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if fieldErrs := report.ValidateReportRun(payload); len(fieldErrs) > 0 {
		response.ValidationFailed(c, report.JoinFieldErrors(fieldErrs), fieldErrs)
		return
	}

	o, err := h.uc.ProcessReportRun(ctx, report.NewReportRunInput(payload))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ReportRun: usecase ProcessReportRun failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportRunResp(o))
}

// @Summary Save an on-demand report
// @Description Persist a one-off report delivered by the automation webhook
// @Tags Report
// @Accept json
// @Produce json
// @Param body body saveOnDemandReq true "On-demand report"
// @Success 200 {object} saveOnDemandResp
// @Failure 400 {object} response.ErrResp
// @Failure 401 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/reports/on-demand [post]
func (h *handler) SaveOnDemand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveOnDemandRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SaveOnDemand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SaveOnDemand: usecase SaveOnDemand failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSaveOnDemandResp(o))
}

// @Summary List reports
// @Description Role-aware execution log listing, newest run first. Admins see every user's reports.
// @Tags Report
// @Produce json
// @Param schedule_id query string false "Filter by schedule"
// @Param sort query string false "Client-side re-sort: title or category"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listReportsResp
// @Failure 401 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListReports(ctx, sc, report.ListReportsInput{
		ScheduleID: req.ScheduleID,
		Page:       req.Page,
	})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	views := o.Reports
	if req.Sort != "" {
		views = report.SortReports(views, req.Sort)
	}

	pg := o.Paginator.ToResponse()
	response.OK(c, listReportsResp{
		Success:   true,
		Total:     o.Total,
		Reports:   h.newReportResps(views),
		Paginator: &pg,
	})
}

// @Summary List a schedule's executions
// @Description Full execution history of one schedule with the total count
// @Tags Report
// @Produce json
// @Param schedule_id path string true "Schedule ID"
// @Success 200 {object} scheduleReportsResp
// @Failure 400 {object} response.ErrResp
// @Failure 401 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/reports/schedule/{schedule_id} [get]
func (h *handler) ListBySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	scheduleID, sc, err := h.processScheduleReportsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListBySchedule(ctx, sc, scheduleID)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListBySchedule: usecase ListBySchedule failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, scheduleReportsResp{
		Success:         true,
		ScheduleID:      o.ScheduleID,
		TotalExecutions: o.TotalExecutions,
		Executions:      h.newReportResps(o.Executions),
	})
}

// @Summary Get one report
// @Description Return a single execution record. Owner or admin.
// @Tags Report
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} getReportResp
// @Failure 401 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Router /api/v1/reports/{execution_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	executionID, sc, err := h.processExecutionIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.GetReport(ctx, sc, executionID)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, getReportResp{Success: true, Report: h.newReportResp(view)})
}

// @Summary Delete a report
// @Description Hard-delete one execution record. Owner or admin.
// @Tags Report
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} deleteReportResp
// @Failure 401 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Router /api/v1/reports/{execution_id} [delete]
func (h *handler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	executionID, sc, err := h.processExecutionIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeleteReport(ctx, sc, executionID); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeleteReport: usecase DeleteReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, deleteReportResp{Success: true, Message: "Report deleted"})
}
