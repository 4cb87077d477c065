package report

import (
	"fmt"
	"time"

	"market-intel-srv/internal/model"
	"market-intel-srv/pkg/paginator"
)

// Report type labels shown to clients.
const (
	TypeOnDemand  = "On-demand"
	TypeRecurring = "Recurring"
)

// ReportRunInput is a validated recurring-execution payload.
type ReportRunInput struct {
	UserID      string
	ScheduleID  string
	Industry    string
	SubNiche    string
	Geography   string
	Email       string
	Notes       string
	Frequency   string
	RunAt       time.Time
	IsFirstRun  bool
	FinalReport string
	EmailReport string
}

// ReportRunOutput reports the persisted execution. IsFirstRun is the
// effective value after reconciling the caller's claim against stored
// history, which may differ from the claim in the input.
type ReportRunOutput struct {
	ExecutionID string
	ScheduleID  string
	IsFirstRun  bool
	Message     string
	Timestamp   time.Time
}

// SaveOnDemandInput is a one-off report to persist outside any schedule.
type SaveOnDemandInput struct {
	UserID      string
	Industry    string
	SubNiche    string
	Geography   string
	Email       string
	Notes       string
	FinalReport string
	EmailReport string
}

// SaveOutput identifies the persisted on-demand record.
type SaveOutput struct {
	ExecutionID string
	Timestamp   time.Time
}

// ListReportsInput filters and paginates the execution log listing.
type ListReportsInput struct {
	// ScheduleID narrows the listing to one schedule when non-empty.
	ScheduleID string
	Page       paginator.PaginateQuery
}

// ReportView is the client-facing projection of an execution record.
// Stored rows are never mutated to produce it.
type ReportView struct {
	ExecutionID   string
	ScheduleID    string
	UserID        string
	Title         string
	Type          string
	Industry      string
	SubNiche      string
	Geography     string
	Email         string
	Notes         string
	Frequency     string
	Status        string
	IsFirstRun    bool
	FinalReport   string
	EmailReport   string
	RunAt         time.Time
	DateGenerated string
}

// ListReportsOutput carries one page of the execution log.
type ListReportsOutput struct {
	Reports   []ReportView
	Total     int64
	Paginator paginator.Paginator
}

// ScheduleReportsOutput is a schedule's full execution history.
type ScheduleReportsOutput struct {
	ScheduleID      string
	TotalExecutions int64
	Executions      []ReportView
}

// NewReportView projects a stored execution record into its view model.
func NewReportView(r model.Report) ReportView {
	view := ReportView{
		ExecutionID:   r.ExecutionID,
		UserID:        r.UserID,
		Title:         fmt.Sprintf("%s - %s", r.Industry, r.SubNiche),
		Type:          TypeRecurring,
		Industry:      r.Industry,
		SubNiche:      r.SubNiche,
		Geography:     r.Geography,
		Email:         r.Email,
		Notes:         r.Notes,
		Frequency:     r.Frequency,
		Status:        r.Status,
		IsFirstRun:    r.IsFirstRun,
		FinalReport:   r.FinalReport,
		EmailReport:   r.EmailReport,
		RunAt:         r.RunAt,
		DateGenerated: r.RunAt.Format("January 2, 2006"),
	}
	if r.ScheduleID != nil {
		view.ScheduleID = *r.ScheduleID
	}
	if r.Frequency == model.FrequencyOnDemand {
		view.Type = TypeOnDemand
	}
	return view
}
