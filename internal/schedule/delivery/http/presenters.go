package http

import (
	"time"

	"market-intel-srv/internal/model"
)

type scheduleIDReq struct {
	ScheduleID string
}

type scheduleResp struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Industry       string  `json:"industry"`
	SubNiche       string  `json:"sub_niche"`
	Geography      string  `json:"geography,omitempty"`
	Email          string  `json:"email,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	Frequency      string  `json:"frequency"`
	Active         bool    `json:"active"`
	NextRun        *string `json:"next_run,omitempty"`
	LastRun        *string `json:"last_run,omitempty"`
	ExecutionCount int64   `json:"execution_count"`
	CreatedAt      string  `json:"created_at"`
}

type listSchedulesResp struct {
	Success   bool           `json:"success"`
	Total     int            `json:"total"`
	Schedules []scheduleResp `json:"schedules"`
}

type mutateScheduleResp struct {
	Success  bool         `json:"success"`
	Schedule scheduleResp `json:"schedule"`
}

type deleteScheduleResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newScheduleResp(s model.Schedule) scheduleResp {
	resp := scheduleResp{
		ID:             s.ID,
		UserID:         s.UserID,
		Industry:       s.Industry,
		SubNiche:       s.SubNiche,
		Geography:      s.Geography,
		Email:          s.Email,
		Notes:          s.Notes,
		Frequency:      s.Frequency,
		Active:         s.Active,
		ExecutionCount: s.ExecutionCount,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
	if s.NextRun != nil {
		v := s.NextRun.Format(time.RFC3339)
		resp.NextRun = &v
	}
	if s.LastRun != nil {
		v := s.LastRun.Format(time.RFC3339)
		resp.LastRun = &v
	}
	return resp
}

func (h *handler) newListSchedulesResp(scheds []model.Schedule) listSchedulesResp {
	items := make([]scheduleResp, 0, len(scheds))
	for _, s := range scheds {
		items = append(items, h.newScheduleResp(s))
	}
	return listSchedulesResp{
		Success:   true,
		Total:     len(items),
		Schedules: items,
	}
}
