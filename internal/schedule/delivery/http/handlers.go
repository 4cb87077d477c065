package http

import (
	"market-intel-srv/pkg/response"
	"market-intel-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List active schedules
// @Description Return the caller's active recurring schedules. Admins see every user's schedules.
// @Tags Schedule
// @Produce json
// @Success 200 {object} listSchedulesResp
// @Failure 401 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/schedules/active [get]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	scheds, err := h.uc.ListActive(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.ListActive: usecase ListActive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListSchedulesResp(scheds))
}

// @Summary List all schedules
// @Description Return every schedule regardless of owner or state. Admin only.
// @Tags Schedule
// @Produce json
// @Success 200 {object} listSchedulesResp
// @Failure 401 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/schedules/all [get]
func (h *handler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	scheds, err := h.uc.ListAll(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.ListAll: usecase ListAll failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListSchedulesResp(scheds))
}

// @Summary Pause a schedule
// @Description Deactivate a recurring schedule without deleting it
// @Tags Schedule
// @Produce json
// @Param schedule_id path string true "Schedule ID"
// @Success 200 {object} mutateScheduleResp
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/schedules/{schedule_id}/pause [patch]
func (h *handler) Pause(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processScheduleIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Pause: processScheduleIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sched, err := h.uc.Pause(ctx, sc, req.ScheduleID)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Pause: usecase Pause failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, mutateScheduleResp{Success: true, Schedule: h.newScheduleResp(sched)})
}

// @Summary Resume a schedule
// @Description Reactivate a paused recurring schedule
// @Tags Schedule
// @Produce json
// @Param schedule_id path string true "Schedule ID"
// @Success 200 {object} mutateScheduleResp
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/schedules/{schedule_id}/resume [patch]
func (h *handler) Resume(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processScheduleIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Resume: processScheduleIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sched, err := h.uc.Resume(ctx, sc, req.ScheduleID)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Resume: usecase Resume failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, mutateScheduleResp{Success: true, Schedule: h.newScheduleResp(sched)})
}

// @Summary Delete a schedule
// @Description Remove a schedule. Past execution records are kept.
// @Tags Schedule
// @Produce json
// @Param schedule_id path string true "Schedule ID"
// @Success 200 {object} deleteScheduleResp
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/schedules/{schedule_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processScheduleIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Delete: processScheduleIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.ScheduleID); err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, deleteScheduleResp{Success: true, Message: "Schedule deleted"})
}
