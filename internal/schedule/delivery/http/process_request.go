package http

import (
	"market-intel-srv/internal/model"
	"market-intel-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processScheduleIDRequest(c *gin.Context) (scheduleIDReq, model.Scope, error) {
	req := scheduleIDReq{
		ScheduleID: c.Param("schedule_id"),
	}
	if req.ScheduleID == "" {
		return req, model.Scope{}, errScheduleIDRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
