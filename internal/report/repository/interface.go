package repository

import (
	"context"

	"market-intel-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	Create(ctx context.Context, opts CreateReportOptions) (*model.Report, error)
	GetByID(ctx context.Context, executionID string) (*model.Report, error)
	// List returns one page sorted run_at DESC plus the unpaginated total.
	List(ctx context.Context, opts ListReportsOptions) ([]*model.Report, int64, error)
	// CountBySchedule counts persisted executions for a schedule.
	CountBySchedule(ctx context.Context, scheduleID string) (int64, error)
	Delete(ctx context.Context, executionID string) error
}
