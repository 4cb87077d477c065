package repository

import (
	"context"

	"market-intel-srv/internal/model"
)

//go:generate mockery --name ScheduleRepository
type ScheduleRepository interface {
	Create(ctx context.Context, opts CreateScheduleOptions) (*model.Schedule, error)
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	List(ctx context.Context, opts ListSchedulesOptions) ([]*model.Schedule, error)
	SetActive(ctx context.Context, id string, active bool) (*model.Schedule, error)
	MarkInitialized(ctx context.Context, id string) error
	RecordExecution(ctx context.Context, opts RecordExecutionOptions) error
	Delete(ctx context.Context, id string) error
}
