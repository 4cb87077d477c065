package report

import (
	"context"

	"market-intel-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessReportRun logs one recurring execution: first-run
	// reconciliation, execution record persistence, best-effort schedule
	// bookkeeping. The execution record write is the only fatal step.
	ProcessReportRun(ctx context.Context, input ReportRunInput) (ReportRunOutput, error)

	// SaveOnDemand persists a one-off report generated outside any
	// schedule (the webhook callback path).
	SaveOnDemand(ctx context.Context, input SaveOnDemandInput) (SaveOutput, error)

	// ListReports returns the caller-visible execution log as view
	// models, newest run first. Non-admin callers only ever see their own
	// rows; the restriction is applied in the query, not post-filtered.
	ListReports(ctx context.Context, sc model.Scope, input ListReportsInput) (ListReportsOutput, error)

	// ListBySchedule returns a single schedule's execution history.
	ListBySchedule(ctx context.Context, sc model.Scope, scheduleID string) (ScheduleReportsOutput, error)

	GetReport(ctx context.Context, sc model.Scope, executionID string) (ReportView, error)

	// DeleteReport hard-deletes one execution record. Owner or admin.
	DeleteReport(ctx context.Context, sc model.Scope, executionID string) error
}
