package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/schedule/repository"
)

// Create registers a new recurring schedule and emits a schedule_created event.
func (uc *implUseCase) Create(ctx context.Context, input schedule.CreateInput) (model.Schedule, error) {
	if input.UserID == "" {
		return model.Schedule{}, schedule.ErrUserIDRequired
	}

	freq := strings.ToLower(strings.TrimSpace(input.Frequency))
	if !model.IsValidFrequency(freq) || freq == model.FrequencyOnDemand {
		return model.Schedule{}, schedule.ErrInvalidFrequency
	}

	runAt := input.RunAt
	if runAt.IsZero() {
		runAt = time.Now()
	}
	nextRun := runAt.Add(model.FrequencyInterval(freq))

	sched, err := uc.repo.Create(ctx, repository.CreateScheduleOptions{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Industry:  input.Industry,
		SubNiche:  input.SubNiche,
		Geography: input.Geography,
		Email:     input.Email,
		Notes:     input.Notes,
		Frequency: freq,
		NextRun:   &nextRun,
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Create: Failed to create schedule: %v", err)
		return model.Schedule{}, schedule.ErrScheduleNotSaved
	}

	uc.emitter.Emit(ctx, activity.Event{
		Type:       activity.TypeScheduleCreated,
		UserID:     sched.UserID,
		Email:      sched.Email,
		ScheduleID: sched.ID,
		Frequency:  sched.Frequency,
	})

	return *sched, nil
}

// ListActive returns the caller's active schedules. Admins see every
// user's active schedules.
func (uc *implUseCase) ListActive(ctx context.Context, sc model.Scope) ([]model.Schedule, error) {
	opts := repository.ListSchedulesOptions{ActiveOnly: true}
	if !sc.IsAdmin() {
		opts.UserID = sc.UserID
	}

	scheds, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.ListActive: Failed to list schedules: %v", err)
		return nil, err
	}

	return derefSchedules(scheds), nil
}

// ListAll returns every schedule. The admin gate sits in the middleware;
// the scope check here is the defense at the usecase boundary.
func (uc *implUseCase) ListAll(ctx context.Context, sc model.Scope) ([]model.Schedule, error) {
	if !sc.IsAdmin() {
		return nil, schedule.ErrPermissionDenied
	}

	scheds, err := uc.repo.List(ctx, repository.ListSchedulesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.ListAll: Failed to list schedules: %v", err)
		return nil, err
	}

	return derefSchedules(scheds), nil
}

func (uc *implUseCase) Pause(ctx context.Context, sc model.Scope, id string) (model.Schedule, error) {
	return uc.setActive(ctx, sc, id, false, activity.TypeSchedulePaused)
}

func (uc *implUseCase) Resume(ctx context.Context, sc model.Scope, id string) (model.Schedule, error) {
	return uc.setActive(ctx, sc, id, true, activity.TypeScheduleResumed)
}

func (uc *implUseCase) setActive(ctx context.Context, sc model.Scope, id string, active bool, eventType string) (model.Schedule, error) {
	if err := uc.authorize(ctx, sc, id); err != nil {
		return model.Schedule{}, err
	}

	sched, err := uc.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return model.Schedule{}, schedule.ErrScheduleNotFound
		}
		uc.l.Errorf(ctx, "schedule.usecase.setActive: Failed to update schedule %s: %v", id, err)
		return model.Schedule{}, schedule.ErrScheduleNotUpdate
	}

	uc.emitter.Emit(ctx, activity.Event{
		Type:       eventType,
		UserID:     sc.UserID,
		ScheduleID: id,
	})

	return *sched, nil
}

// Delete removes the schedule row. Past execution records survive.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.authorize(ctx, sc, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		uc.l.Errorf(ctx, "schedule.usecase.Delete: Failed to delete schedule %s: %v", id, err)
		return err
	}

	uc.emitter.Emit(ctx, activity.Event{
		Type:       activity.TypeScheduleDeleted,
		UserID:     sc.UserID,
		ScheduleID: id,
	})

	return nil
}

// MarkInitialized flags the schedule's first run. Safe to call more than
// once for the same schedule.
func (uc *implUseCase) MarkInitialized(ctx context.Context, id string) error {
	if err := uc.repo.MarkInitialized(ctx, id); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.MarkInitialized: Failed to mark schedule %s: %v", id, err)
		return err
	}
	return nil
}

// RecordExecution bumps execution_count, last_run and next_run after a
// successfully persisted run.
func (uc *implUseCase) RecordExecution(ctx context.Context, id string, runAt time.Time) error {
	sched, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		return err
	}

	var nextRun *time.Time
	if interval := sched.Interval(); interval > 0 {
		n := runAt.Add(interval)
		nextRun = &n
	}

	if err := uc.repo.RecordExecution(ctx, repository.RecordExecutionOptions{
		ScheduleID: id,
		RunAt:      runAt,
		NextRun:    nextRun,
	}); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.RecordExecution: Failed to record execution for %s: %v", id, err)
		return err
	}

	return nil
}

// authorize resolves owner-or-admin access to a schedule.
func (uc *implUseCase) authorize(ctx context.Context, sc model.Scope, id string) error {
	sched, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		uc.l.Errorf(ctx, "schedule.usecase.authorize: Failed to get schedule %s: %v", id, err)
		return err
	}

	if !sc.IsAdmin() && sched.UserID != sc.UserID {
		return schedule.ErrPermissionDenied
	}
	return nil
}

func derefSchedules(in []*model.Schedule) []model.Schedule {
	out := make([]model.Schedule, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
