package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/schedule/repository"
	"market-intel-srv/pkg/log"
)

// fakeRepo is an in-memory ScheduleRepository.
type fakeRepo struct {
	lastCreate repository.CreateScheduleOptions
	createErr  error

	schedules map[string]*model.Schedule

	lastListOpts repository.ListSchedulesOptions

	lastRecord repository.RecordExecutionOptions

	initialized []string
	deleted     []string
}

func (f *fakeRepo) Create(_ context.Context, opts repository.CreateScheduleOptions) (*model.Schedule, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreate = opts
	return &model.Schedule{
		ID:        opts.ID,
		UserID:    opts.UserID,
		Industry:  opts.Industry,
		SubNiche:  opts.SubNiche,
		Email:     opts.Email,
		Frequency: opts.Frequency,
		Active:    true,
		NextRun:   opts.NextRun,
	}, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, repository.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeRepo) List(_ context.Context, opts repository.ListSchedulesOptions) ([]*model.Schedule, error) {
	f.lastListOpts = opts
	return nil, nil
}

func (f *fakeRepo) SetActive(_ context.Context, id string, active bool) (*model.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, repository.ErrScheduleNotFound
	}
	s.Active = active
	return s, nil
}

func (f *fakeRepo) MarkInitialized(_ context.Context, id string) error {
	f.initialized = append(f.initialized, id)
	return nil
}

func (f *fakeRepo) RecordExecution(_ context.Context, opts repository.RecordExecutionOptions) error {
	f.lastRecord = opts
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.schedules[id]; !ok {
		return repository.ErrScheduleNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEmitter struct {
	events []activity.Event
}

func (f *fakeEmitter) Emit(_ context.Context, ev activity.Event) {
	f.events = append(f.events, ev)
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	input := schedule.CreateInput{
		UserID:    "user-1",
		Industry:  "Fintech",
		SubNiche:  "Payments",
		Email:     "user@example.com",
		Frequency: "weekly",
		RunAt:     time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("creates with advanced next run", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		sched, err := uc.Create(ctx, input)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if sched.ID == "" {
			t.Error("Schedule id should be assigned")
		}
		if repo.lastCreate.NextRun == nil {
			t.Fatal("NextRun should be set")
		}
		wantNext := input.RunAt.Add(7 * 24 * time.Hour)
		if !repo.lastCreate.NextRun.Equal(wantNext) {
			t.Errorf("NextRun mismatch: got %v, want %v", repo.lastCreate.NextRun, wantNext)
		}
	})

	t.Run("frequency is normalized", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		in := input
		in.Frequency = " Monthly "
		if _, err := uc.Create(ctx, in); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if repo.lastCreate.Frequency != model.FrequencyMonthly {
			t.Errorf("Frequency not normalized: got %q", repo.lastCreate.Frequency)
		}
	})

	t.Run("on-demand is not schedulable", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeEmitter{}, log.NewNoop())

		in := input
		in.Frequency = model.FrequencyOnDemand
		if _, err := uc.Create(ctx, in); !errors.Is(err, schedule.ErrInvalidFrequency) {
			t.Errorf("Expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("unknown frequency", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeEmitter{}, log.NewNoop())

		in := input
		in.Frequency = "hourly"
		if _, err := uc.Create(ctx, in); !errors.Is(err, schedule.ErrInvalidFrequency) {
			t.Errorf("Expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("user id required", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeEmitter{}, log.NewNoop())

		in := input
		in.UserID = ""
		if _, err := uc.Create(ctx, in); !errors.Is(err, schedule.ErrUserIDRequired) {
			t.Errorf("Expected ErrUserIDRequired, got %v", err)
		}
	})

	t.Run("storage failure is typed", func(t *testing.T) {
		uc := New(&fakeRepo{createErr: errors.New("insert failed")}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Create(ctx, input); !errors.Is(err, schedule.ErrScheduleNotSaved) {
			t.Errorf("Expected ErrScheduleNotSaved, got %v", err)
		}
	})

	t.Run("created event is emitted", func(t *testing.T) {
		emitter := &fakeEmitter{}
		uc := New(&fakeRepo{}, emitter, log.NewNoop())

		if _, err := uc.Create(ctx, input); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(emitter.events) != 1 || emitter.events[0].Type != activity.TypeScheduleCreated {
			t.Errorf("Expected a schedule_created event, got %v", emitter.events)
		}
	})
}

func TestListSchedules(t *testing.T) {
	ctx := context.Background()

	t.Run("active listing is owner-filtered for users", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "user-1", Role: model.RoleUser}
		if _, err := uc.ListActive(ctx, sc); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !repo.lastListOpts.ActiveOnly {
			t.Error("Listing should be restricted to active schedules")
		}
		if repo.lastListOpts.UserID != "user-1" {
			t.Errorf("Owner filter missing: got %q", repo.lastListOpts.UserID)
		}
	})

	t.Run("admin active listing is unfiltered", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
		if _, err := uc.ListActive(ctx, sc); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if repo.lastListOpts.UserID != "" {
			t.Errorf("Admin listing must not be owner-filtered, got %q", repo.lastListOpts.UserID)
		}
	})

	t.Run("full listing is admin only", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "user-1", Role: model.RoleUser}
		if _, err := uc.ListAll(ctx, sc); !errors.Is(err, schedule.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestPauseResume(t *testing.T) {
	ctx := context.Background()

	newRepo := func() *fakeRepo {
		return &fakeRepo{schedules: map[string]*model.Schedule{
			"sched-1": {ID: "sched-1", UserID: "user-1", Active: true},
		}}
	}

	t.Run("owner can pause and resume", func(t *testing.T) {
		repo := newRepo()
		emitter := &fakeEmitter{}
		uc := New(repo, emitter, log.NewNoop())

		sc := model.Scope{UserID: "user-1", Role: model.RoleUser}
		sched, err := uc.Pause(ctx, sc, "sched-1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if sched.Active {
			t.Error("Schedule should be inactive after pause")
		}

		sched, err = uc.Resume(ctx, sc, "sched-1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !sched.Active {
			t.Error("Schedule should be active after resume")
		}

		if len(emitter.events) != 2 ||
			emitter.events[0].Type != activity.TypeSchedulePaused ||
			emitter.events[1].Type != activity.TypeScheduleResumed {
			t.Errorf("Event sequence mismatch: %v", emitter.events)
		}
	})

	t.Run("other users are denied", func(t *testing.T) {
		uc := New(newRepo(), &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "user-2", Role: model.RoleUser}
		if _, err := uc.Pause(ctx, sc, "sched-1"); !errors.Is(err, schedule.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("admin can pause any schedule", func(t *testing.T) {
		uc := New(newRepo(), &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
		if _, err := uc.Pause(ctx, sc, "sched-1"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("unknown schedule", func(t *testing.T) {
		uc := New(newRepo(), &fakeEmitter{}, log.NewNoop())

		sc := model.Scope{UserID: "user-1", Role: model.RoleUser}
		if _, err := uc.Pause(ctx, sc, "missing"); !errors.Is(err, schedule.ErrScheduleNotFound) {
			t.Errorf("Expected ErrScheduleNotFound, got %v", err)
		}
	})
}

func TestRecordExecution(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)

	t.Run("advances next run by the frequency interval", func(t *testing.T) {
		repo := &fakeRepo{schedules: map[string]*model.Schedule{
			"sched-1": {ID: "sched-1", Frequency: model.FrequencyDaily},
		}}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		if err := uc.RecordExecution(ctx, "sched-1", runAt); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if repo.lastRecord.NextRun == nil {
			t.Fatal("NextRun should be set")
		}
		want := runAt.Add(24 * time.Hour)
		if !repo.lastRecord.NextRun.Equal(want) {
			t.Errorf("NextRun mismatch: got %v, want %v", repo.lastRecord.NextRun, want)
		}
		if !repo.lastRecord.RunAt.Equal(runAt) {
			t.Errorf("RunAt mismatch: got %v, want %v", repo.lastRecord.RunAt, runAt)
		}
	})

	t.Run("unknown frequency leaves next run untouched", func(t *testing.T) {
		repo := &fakeRepo{schedules: map[string]*model.Schedule{
			"sched-1": {ID: "sched-1", Frequency: "custom"},
		}}
		uc := New(repo, &fakeEmitter{}, log.NewNoop())

		if err := uc.RecordExecution(ctx, "sched-1", runAt); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if repo.lastRecord.NextRun != nil {
			t.Errorf("NextRun should stay nil, got %v", repo.lastRecord.NextRun)
		}
	})

	t.Run("unknown schedule", func(t *testing.T) {
		uc := New(&fakeRepo{schedules: map[string]*model.Schedule{}}, &fakeEmitter{}, log.NewNoop())

		if err := uc.RecordExecution(ctx, "missing", runAt); !errors.Is(err, schedule.ErrScheduleNotFound) {
			t.Errorf("Expected ErrScheduleNotFound, got %v", err)
		}
	})
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{schedules: map[string]*model.Schedule{
		"sched-1": {ID: "sched-1", UserID: "user-1"},
	}}
	emitter := &fakeEmitter{}
	uc := New(repo, emitter, log.NewNoop())

	sc := model.Scope{UserID: "user-1", Role: model.RoleUser}
	if err := uc.Delete(ctx, sc, "sched-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(repo.deleted) != 1 || repo.deleted[0] != "sched-1" {
		t.Errorf("Delete call mismatch: %v", repo.deleted)
	}
	if len(emitter.events) != 1 || emitter.events[0].Type != activity.TypeScheduleDeleted {
		t.Errorf("Expected a schedule_deleted event, got %v", emitter.events)
	}
}
