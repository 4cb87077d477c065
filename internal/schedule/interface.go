package schedule

import (
	"context"
	"time"

	"market-intel-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create registers a new recurring schedule. Called by the research
	// dispatcher on the first recurring submission.
	Create(ctx context.Context, input CreateInput) (model.Schedule, error)

	// ListActive returns the caller's active schedules; admins see all.
	ListActive(ctx context.Context, sc model.Scope) ([]model.Schedule, error)

	// ListAll returns every schedule regardless of state. Admin only.
	ListAll(ctx context.Context, sc model.Scope) ([]model.Schedule, error)

	Pause(ctx context.Context, sc model.Scope, id string) (model.Schedule, error)
	Resume(ctx context.Context, sc model.Scope, id string) (model.Schedule, error)

	// Delete removes the schedule row. Past reports survive.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// MarkInitialized records that the schedule's first run happened.
	// Idempotent: marking an already-initialized schedule is a no-op.
	MarkInitialized(ctx context.Context, id string) error

	// RecordExecution bumps execution bookkeeping after a successful run:
	// execution_count+1, last_run=runAt, next_run advanced by the
	// schedule's frequency interval.
	RecordExecution(ctx context.Context, id string, runAt time.Time) error
}
