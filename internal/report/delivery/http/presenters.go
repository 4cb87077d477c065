package http

import (
	"time"

	"market-intel-srv/internal/report"
	"market-intel-srv/pkg/paginator"
)

type saveOnDemandReq struct {
	UserID      string `json:"user_id" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	SubNiche    string `json:"sub_niche" binding:"required"`
	Geography   string `json:"geography,omitempty"`
	Email       string `json:"email" binding:"required"`
	Notes       string `json:"notes,omitempty"`
	FinalReport string `json:"final_report" binding:"required"`
	EmailReport string `json:"email_report,omitempty"`
}

func (r saveOnDemandReq) toInput() report.SaveOnDemandInput {
	return report.SaveOnDemandInput{
		UserID:      r.UserID,
		Industry:    r.Industry,
		SubNiche:    r.SubNiche,
		Geography:   r.Geography,
		Email:       r.Email,
		Notes:       r.Notes,
		FinalReport: r.FinalReport,
		EmailReport: r.EmailReport,
	}
}

type listReportsReq struct {
	ScheduleID string `form:"schedule_id"`
	Sort       string `form:"sort"`
	Page       paginator.PaginateQuery
}

type reportRunResp struct {
	Success     bool   `json:"success"`
	ExecutionID string `json:"execution_id"`
	ScheduleID  string `json:"schedule_id"`
	IsFirstRun  bool   `json:"is_first_run"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
}

type saveOnDemandResp struct {
	Success     bool   `json:"success"`
	ExecutionID string `json:"execution_id"`
	Timestamp   string `json:"timestamp"`
}

type reportResp struct {
	ExecutionID   string `json:"execution_id"`
	ScheduleID    string `json:"schedule_id,omitempty"`
	UserID        string `json:"user_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Industry      string `json:"industry"`
	SubNiche      string `json:"sub_niche"`
	Geography     string `json:"geography,omitempty"`
	Email         string `json:"email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Frequency     string `json:"frequency"`
	Status        string `json:"status"`
	IsFirstRun    bool   `json:"is_first_run"`
	FinalReport   string `json:"final_report"`
	EmailReport   string `json:"email_report,omitempty"`
	RunAt         string `json:"run_at"`
	DateGenerated string `json:"date_generated"`
}

type listReportsResp struct {
	Success   bool                         `json:"success"`
	Total     int64                        `json:"total"`
	Reports   []reportResp                 `json:"reports"`
	Paginator *paginator.PaginatorResponse `json:"paginator,omitempty"`
}

type scheduleReportsResp struct {
	Success         bool         `json:"success"`
	ScheduleID      string       `json:"schedule_id"`
	TotalExecutions int64        `json:"total_executions"`
	Executions      []reportResp `json:"executions"`
}

type getReportResp struct {
	Success bool       `json:"success"`
	Report  reportResp `json:"report"`
}

type deleteReportResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newReportRunResp(o report.ReportRunOutput) reportRunResp {
	return reportRunResp{
		Success:     true,
		ExecutionID: o.ExecutionID,
		ScheduleID:  o.ScheduleID,
		IsFirstRun:  o.IsFirstRun,
		Message:     o.Message,
		Timestamp:   o.Timestamp.Format(time.RFC3339),
	}
}

func (h *handler) newSaveOnDemandResp(o report.SaveOutput) saveOnDemandResp {
	return saveOnDemandResp{
		Success:     true,
		ExecutionID: o.ExecutionID,
		Timestamp:   o.Timestamp.Format(time.RFC3339),
	}
}

func (h *handler) newReportResp(v report.ReportView) reportResp {
	return reportResp{
		ExecutionID:   v.ExecutionID,
		ScheduleID:    v.ScheduleID,
		UserID:        v.UserID,
		Title:         v.Title,
		Type:          v.Type,
		Industry:      v.Industry,
		SubNiche:      v.SubNiche,
		Geography:     v.Geography,
		Email:         v.Email,
		Notes:         v.Notes,
		Frequency:     v.Frequency,
		Status:        v.Status,
		IsFirstRun:    v.IsFirstRun,
		FinalReport:   v.FinalReport,
		EmailReport:   v.EmailReport,
		RunAt:         v.RunAt.Format(time.RFC3339),
		DateGenerated: v.DateGenerated,
	}
}

func (h *handler) newReportResps(views []report.ReportView) []reportResp {
	items := make([]reportResp, 0, len(views))
	for _, v := range views {
		items = append(items, h.newReportResp(v))
	}
	return items
}
