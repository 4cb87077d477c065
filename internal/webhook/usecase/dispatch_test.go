package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/webhook"
	"market-intel-srv/internal/webhook/repository"
	"market-intel-srv/pkg/log"
)

// fakeWebhookRepo is an in-memory WebhookRepository.
type fakeWebhookRepo struct {
	active      []*model.Webhook
	activeCalls int

	all []*model.Webhook

	created    []repository.CreateWebhookOptions
	lastUpdate repository.UpdateWebhookOptions
	updateErr  error
	deleted    []string
	deleteErr  error
}

func (f *fakeWebhookRepo) Create(_ context.Context, opts repository.CreateWebhookOptions) (*model.Webhook, error) {
	f.created = append(f.created, opts)
	return &model.Webhook{
		ID:     opts.ID,
		Name:   opts.Name,
		URL:    opts.URL,
		Type:   opts.Type,
		Active: opts.Active,
	}, nil
}

func (f *fakeWebhookRepo) GetByID(_ context.Context, id string) (*model.Webhook, error) {
	for _, w := range f.all {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, repository.ErrWebhookNotFound
}

func (f *fakeWebhookRepo) List(_ context.Context, _ repository.ListWebhooksOptions) ([]*model.Webhook, error) {
	return f.all, nil
}

func (f *fakeWebhookRepo) ListActiveByType(_ context.Context, _ string) ([]*model.Webhook, error) {
	f.activeCalls++
	return f.active, nil
}

func (f *fakeWebhookRepo) Update(_ context.Context, opts repository.UpdateWebhookOptions) (*model.Webhook, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdate = opts
	return &model.Webhook{ID: opts.ID}, nil
}

func (f *fakeWebhookRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeCache is an in-memory CacheRepository. A nil entries map means
// every read misses.
type fakeCache struct {
	entries     map[string][]*model.Webhook
	saved       map[string][]*model.Webhook
	invalidated int
}

func (f *fakeCache) GetActiveByType(_ context.Context, webhookType string) ([]*model.Webhook, error) {
	if whs, ok := f.entries[webhookType]; ok {
		return whs, nil
	}
	return nil, goredis.Nil
}

func (f *fakeCache) SaveActiveByType(_ context.Context, webhookType string, webhooks []*model.Webhook) error {
	if f.saved == nil {
		f.saved = map[string][]*model.Webhook{}
	}
	f.saved[webhookType] = webhooks
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context) error {
	f.invalidated++
	return nil
}

// endpointReply scripts one endpoint's behavior in the fake client.
type endpointReply struct {
	body   []byte
	status int
	err    error
}

// fakeClient serves scripted replies keyed by URL and records the
// payloads it was asked to post.
type fakeClient struct {
	mu      sync.Mutex
	replies map[string]endpointReply
	posted  map[string]map[string]any
}

func (f *fakeClient) Get(_ context.Context, _ string, _ map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("not used")
}

func (f *fakeClient) Post(_ context.Context, url string, body interface{}, _ map[string]string) ([]byte, int, error) {
	f.mu.Lock()
	if f.posted == nil {
		f.posted = map[string]map[string]any{}
	}
	if payload, ok := body.(map[string]any); ok {
		f.posted[url] = payload
	}
	reply := f.replies[url]
	f.mu.Unlock()

	return reply.body, reply.status, reply.err
}

// fakeReportUC records persistence calls from the dispatcher.
type fakeReportUC struct {
	onDemandInputs []report.SaveOnDemandInput
	onDemandErr    error

	runInputs []report.ReportRunInput
	runErr    error
}

func (f *fakeReportUC) ProcessReportRun(_ context.Context, input report.ReportRunInput) (report.ReportRunOutput, error) {
	if f.runErr != nil {
		return report.ReportRunOutput{}, f.runErr
	}
	f.runInputs = append(f.runInputs, input)
	return report.ReportRunOutput{ExecutionID: "exec_1_abc", ScheduleID: input.ScheduleID}, nil
}

func (f *fakeReportUC) SaveOnDemand(_ context.Context, input report.SaveOnDemandInput) (report.SaveOutput, error) {
	if f.onDemandErr != nil {
		return report.SaveOutput{}, f.onDemandErr
	}
	f.onDemandInputs = append(f.onDemandInputs, input)
	return report.SaveOutput{ExecutionID: "ondemand_1_abc", Timestamp: time.Now()}, nil
}

func (f *fakeReportUC) ListReports(_ context.Context, _ model.Scope, _ report.ListReportsInput) (report.ListReportsOutput, error) {
	return report.ListReportsOutput{}, nil
}

func (f *fakeReportUC) ListBySchedule(_ context.Context, _ model.Scope, _ string) (report.ScheduleReportsOutput, error) {
	return report.ScheduleReportsOutput{}, nil
}

func (f *fakeReportUC) GetReport(_ context.Context, _ model.Scope, _ string) (report.ReportView, error) {
	return report.ReportView{}, nil
}

func (f *fakeReportUC) DeleteReport(_ context.Context, _ model.Scope, _ string) error {
	return nil
}

// fakeScheduleUC records schedule creation from the dispatcher.
type fakeScheduleUC struct {
	created   []schedule.CreateInput
	createErr error
}

func (f *fakeScheduleUC) Create(_ context.Context, input schedule.CreateInput) (model.Schedule, error) {
	if f.createErr != nil {
		return model.Schedule{}, f.createErr
	}
	f.created = append(f.created, input)
	return model.Schedule{ID: "sched-new", UserID: input.UserID, Frequency: input.Frequency}, nil
}

func (f *fakeScheduleUC) ListActive(_ context.Context, _ model.Scope) ([]model.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleUC) ListAll(_ context.Context, _ model.Scope) ([]model.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleUC) Pause(_ context.Context, _ model.Scope, _ string) (model.Schedule, error) {
	return model.Schedule{}, nil
}

func (f *fakeScheduleUC) Resume(_ context.Context, _ model.Scope, _ string) (model.Schedule, error) {
	return model.Schedule{}, nil
}

func (f *fakeScheduleUC) Delete(_ context.Context, _ model.Scope, _ string) error {
	return nil
}

func (f *fakeScheduleUC) MarkInitialized(_ context.Context, _ string) error {
	return nil
}

func (f *fakeScheduleUC) RecordExecution(_ context.Context, _ string, _ time.Time) error {
	return nil
}

type fakeEmitter struct {
	events []activity.Event
}

func (f *fakeEmitter) Emit(_ context.Context, ev activity.Event) {
	f.events = append(f.events, ev)
}

func userScope() model.Scope {
	return model.Scope{UserID: "user-1", Email: "user@example.com", Role: model.RoleUser}
}

func onDemandInput() webhook.DispatchInput {
	return webhook.DispatchInput{
		ResearchType: model.WebhookTypeOnDemand,
		Industry:     "Fintech",
		SubNiche:     "Payments",
		Geography:    "Europe",
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	endpoints := []*model.Webhook{
		{ID: "wh-1", Name: "primary", URL: "https://hooks.test/primary", Type: model.WebhookTypeOnDemand, Active: true},
		{ID: "wh-2", Name: "backup", URL: "https://hooks.test/backup", Type: model.WebhookTypeOnDemand, Active: true},
	}

	t.Run("invalid research type", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.ResearchType = "batch"
		if _, err := uc.Dispatch(ctx, userScope(), input); !errors.Is(err, webhook.ErrInvalidResearchType) {
			t.Errorf("Expected ErrInvalidResearchType, got %v", err)
		}
	})

	t.Run("recurring requires a real frequency", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.ResearchType = model.WebhookTypeRecurring
		for _, freq := range []string{"", model.FrequencyOnDemand, "hourly"} {
			input.Frequency = freq
			if _, err := uc.Dispatch(ctx, userScope(), input); !errors.Is(err, webhook.ErrFrequencyRequired) {
				t.Errorf("Frequency %q: expected ErrFrequencyRequired, got %v", freq, err)
			}
		}
	})

	t.Run("no active webhooks", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Dispatch(ctx, userScope(), onDemandInput()); !errors.Is(err, webhook.ErrNoActiveWebhooks) {
			t.Errorf("Expected ErrNoActiveWebhooks, got %v", err)
		}
	})

	t.Run("all endpoints failing aborts without persistence", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {err: errors.New("connection refused")},
			"https://hooks.test/backup":  {body: []byte("oops"), status: 500},
		}}
		reportUC := &fakeReportUC{}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, reportUC, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Dispatch(ctx, userScope(), onDemandInput()); !errors.Is(err, webhook.ErrAllWebhooksFailed) {
			t.Fatalf("Expected ErrAllWebhooksFailed, got %v", err)
		}
		if len(reportUC.onDemandInputs) != 0 {
			t.Error("Nothing should be persisted when every endpoint fails")
		}
	})

	t.Run("partial failure persists the surviving response", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {err: errors.New("timeout")},
			"https://hooks.test/backup":  {body: []byte(`{"webReport":"# Backup Report"}`), status: 200},
		}}
		reportUC := &fakeReportUC{}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, reportUC, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		out, err := uc.Dispatch(ctx, userScope(), onDemandInput())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if out.WebhookName != "backup" {
			t.Errorf("Winner mismatch: got %q, want %q", out.WebhookName, "backup")
		}
		if out.Report != "# Backup Report" {
			t.Errorf("Report mismatch: got %q", out.Report)
		}
		if len(reportUC.onDemandInputs) != 1 || reportUC.onDemandInputs[0].FinalReport != "# Backup Report" {
			t.Errorf("Persisted report mismatch: %v", reportUC.onDemandInputs)
		}
	})

	t.Run("form email rides the payload and the saved report", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Report"}`), status: 200},
			"https://hooks.test/backup":  {body: []byte(`{"webReport":"# Report"}`), status: 200},
		}}
		reportUC := &fakeReportUC{}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, reportUC, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.Email = "reports@example.com"
		if _, err := uc.Dispatch(ctx, userScope(), input); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		payload := client.posted["https://hooks.test/primary"]
		if payload["email"] != "reports@example.com" {
			t.Errorf("Payload email mismatch: %v", payload["email"])
		}
		if payload["userEmail"] != "user@example.com" {
			t.Errorf("Payload userEmail mismatch: %v", payload["userEmail"])
		}
		if len(reportUC.onDemandInputs) != 1 || reportUC.onDemandInputs[0].Email != "reports@example.com" {
			t.Errorf("Persisted email mismatch: %v", reportUC.onDemandInputs)
		}
	})

	t.Run("blank form email falls back to the login email", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Report"}`), status: 200},
			"https://hooks.test/backup":  {body: []byte(`{"webReport":"# Report"}`), status: 200},
		}}
		reportUC := &fakeReportUC{}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, reportUC, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.Email = "   "
		if _, err := uc.Dispatch(ctx, userScope(), input); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		payload := client.posted["https://hooks.test/primary"]
		if payload["email"] != "user@example.com" {
			t.Errorf("Payload email mismatch: %v", payload["email"])
		}
		if len(reportUC.onDemandInputs) != 1 || reportUC.onDemandInputs[0].Email != "user@example.com" {
			t.Errorf("Persisted email mismatch: %v", reportUC.onDemandInputs)
		}
	})

	t.Run("email variant of the report is persisted", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Web","emailReport":"# Email version"}`), status: 200},
			"https://hooks.test/backup":  {err: errors.New("down")},
		}}
		reportUC := &fakeReportUC{}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, reportUC, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Dispatch(ctx, userScope(), onDemandInput()); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if len(reportUC.onDemandInputs) != 1 {
			t.Fatalf("Expected one persistence, got %d", len(reportUC.onDemandInputs))
		}
		saved := reportUC.onDemandInputs[0]
		if saved.FinalReport != "# Web" {
			t.Errorf("FinalReport mismatch: got %q", saved.FinalReport)
		}
		if saved.EmailReport != "# Email version" {
			t.Errorf("EmailReport mismatch: got %q, want %q", saved.EmailReport, "# Email version")
		}
	})

	t.Run("first usable response in registration order wins", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Primary"}`), status: 200},
			"https://hooks.test/backup":  {body: []byte(`{"webReport":"# Backup"}`), status: 200},
		}}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		out, err := uc.Dispatch(ctx, userScope(), onDemandInput())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if out.WebhookName != "primary" {
			t.Errorf("Winner mismatch: got %q, want %q", out.WebhookName, "primary")
		}
	})

	t.Run("2xx with empty report is not usable", func(t *testing.T) {
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"status":"ok"}`), status: 200},
			"https://hooks.test/backup":  {body: []byte(`{"webReport":"# Backup"}`), status: 200},
		}}
		uc := New(&fakeWebhookRepo{active: endpoints}, &fakeCache{}, client, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		out, err := uc.Dispatch(ctx, userScope(), onDemandInput())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if out.WebhookName != "backup" {
			t.Errorf("Empty report should be skipped, winner was %q", out.WebhookName)
		}
	})

	t.Run("recurring creates the schedule before persistence", func(t *testing.T) {
		recEndpoints := []*model.Webhook{
			{ID: "wh-r", Name: "recurring-hook", URL: "https://hooks.test/rec", Type: model.WebhookTypeRecurring, Active: true},
		}
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/rec": {body: []byte(`{"webReport":"# Recurring","emailReport":"# Recurring mail"}`), status: 200},
		}}
		reportUC := &fakeReportUC{}
		schedUC := &fakeScheduleUC{}
		uc := New(&fakeWebhookRepo{active: recEndpoints}, &fakeCache{}, client, reportUC, schedUC, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.ResearchType = model.WebhookTypeRecurring
		input.Frequency = "Weekly"
		input.Email = "digest@example.com"

		out, err := uc.Dispatch(ctx, userScope(), input)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if out.ScheduleID != "sched-new" {
			t.Errorf("ScheduleID mismatch: got %q", out.ScheduleID)
		}
		if len(schedUC.created) != 1 || schedUC.created[0].Frequency != model.FrequencyWeekly {
			t.Errorf("Schedule create mismatch: %v", schedUC.created)
		}
		if schedUC.created[0].Email != "digest@example.com" {
			t.Errorf("Schedule email mismatch: got %q", schedUC.created[0].Email)
		}
		if len(reportUC.runInputs) != 1 {
			t.Fatalf("Expected one recurring persistence, got %d", len(reportUC.runInputs))
		}
		run := reportUC.runInputs[0]
		if run.ScheduleID != "sched-new" || !run.IsFirstRun {
			t.Errorf("Run input mismatch: %+v", run)
		}
		if run.Email != "digest@example.com" || run.EmailReport != "# Recurring mail" {
			t.Errorf("Run email fields mismatch: %+v", run)
		}

		payload := client.posted["https://hooks.test/rec"]
		if payload["scheduleId"] != "sched-new" {
			t.Errorf("Payload scheduleId mismatch: %v", payload["scheduleId"])
		}
		if payload["isInitialRun"] != true {
			t.Errorf("Payload isInitialRun mismatch: %v", payload["isInitialRun"])
		}
	})

	t.Run("save failure is a distinct error and keeps the schedule", func(t *testing.T) {
		recEndpoints := []*model.Webhook{
			{ID: "wh-r", Name: "recurring-hook", URL: "https://hooks.test/rec", Type: model.WebhookTypeRecurring, Active: true},
		}
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/rec": {body: []byte(`{"webReport":"# Recurring"}`), status: 200},
		}}
		schedUC := &fakeScheduleUC{}
		reportUC := &fakeReportUC{runErr: errors.New("insert failed")}
		uc := New(&fakeWebhookRepo{active: recEndpoints}, &fakeCache{}, client, reportUC, schedUC, &fakeEmitter{}, log.NewNoop())

		input := onDemandInput()
		input.ResearchType = model.WebhookTypeRecurring
		input.Frequency = model.FrequencyWeekly

		_, err := uc.Dispatch(ctx, userScope(), input)
		if !errors.Is(err, webhook.ErrReportNotSaved) {
			t.Fatalf("Expected ErrReportNotSaved, got %v", err)
		}
		if len(schedUC.created) != 1 {
			t.Error("Schedule creation must not depend on the report save outcome")
		}
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		cache := &fakeCache{entries: map[string][]*model.Webhook{
			model.WebhookTypeOnDemand: endpoints,
		}}
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Primary"}`), status: 200},
		}}
		repo := &fakeWebhookRepo{}
		uc := New(repo, cache, client, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Dispatch(ctx, userScope(), onDemandInput()); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if repo.activeCalls != 0 {
			t.Errorf("Postgres should not be read on a cache hit, got %d reads", repo.activeCalls)
		}
	})

	t.Run("cache miss falls back and repopulates", func(t *testing.T) {
		cache := &fakeCache{}
		client := &fakeClient{replies: map[string]endpointReply{
			"https://hooks.test/primary": {body: []byte(`{"webReport":"# Primary"}`), status: 200},
		}}
		repo := &fakeWebhookRepo{active: endpoints}
		uc := New(repo, cache, client, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.Dispatch(ctx, userScope(), onDemandInput()); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if repo.activeCalls != 1 {
			t.Errorf("Expected one storage read, got %d", repo.activeCalls)
		}
		if len(cache.saved[model.WebhookTypeOnDemand]) != len(endpoints) {
			t.Error("Cache should be repopulated from storage")
		}
	})
}
