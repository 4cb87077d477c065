package usecase

import (
	"context"
	"errors"
	"testing"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/webhook"
	"market-intel-srv/internal/webhook/repository"
	"market-intel-srv/pkg/log"
)

func adminScope() model.Scope {
	return model.Scope{UserID: "admin-1", Email: "admin@example.com", Role: model.RoleAdmin}
}

func TestCreateConfig(t *testing.T) {
	ctx := context.Background()

	valid := webhook.ConfigInput{
		Name: "primary",
		URL:  "https://hooks.test/primary",
		Type: model.WebhookTypeOnDemand,
	}

	t.Run("non-admin is denied", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.CreateConfig(ctx, userScope(), valid); !errors.Is(err, webhook.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("name and url required", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := valid
		input.URL = ""
		if _, err := uc.CreateConfig(ctx, adminScope(), input); !errors.Is(err, webhook.ErrNameAndURLRequired) {
			t.Errorf("Expected ErrNameAndURLRequired, got %v", err)
		}
	})

	t.Run("type must be known", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		input := valid
		input.Type = "batch"
		if _, err := uc.CreateConfig(ctx, adminScope(), input); !errors.Is(err, webhook.ErrInvalidWebhookType) {
			t.Errorf("Expected ErrInvalidWebhookType, got %v", err)
		}
	})

	t.Run("defaults to active and invalidates the cache", func(t *testing.T) {
		repo := &fakeWebhookRepo{}
		cache := &fakeCache{}
		emitter := &fakeEmitter{}
		uc := New(repo, cache, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, emitter, log.NewNoop())

		wh, err := uc.CreateConfig(ctx, adminScope(), valid)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !wh.Active {
			t.Error("New webhooks should default to active")
		}
		if wh.ID == "" {
			t.Error("Webhook id should be assigned")
		}
		if cache.invalidated != 1 {
			t.Errorf("Expected one cache invalidation, got %d", cache.invalidated)
		}
		if len(emitter.events) != 1 || emitter.events[0].Type != activity.TypeWebhookConfigSet {
			t.Errorf("Expected a config-changed event, got %v", emitter.events)
		}
	})

	t.Run("explicit inactive is honored", func(t *testing.T) {
		repo := &fakeWebhookRepo{}
		uc := New(repo, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		inactive := false
		input := valid
		input.Active = &inactive

		wh, err := uc.CreateConfig(ctx, adminScope(), input)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if wh.Active {
			t.Error("Explicit inactive should be kept")
		}
	})
}

func TestUpdateConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update only touches provided fields", func(t *testing.T) {
		repo := &fakeWebhookRepo{}
		cache := &fakeCache{}
		uc := New(repo, cache, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.UpdateConfig(ctx, adminScope(), "wh-1", webhook.ConfigInput{Name: "renamed"}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if repo.lastUpdate.Name == nil || *repo.lastUpdate.Name != "renamed" {
			t.Errorf("Name update missing: %+v", repo.lastUpdate)
		}
		if repo.lastUpdate.URL != nil || repo.lastUpdate.Type != nil {
			t.Error("Unset fields must not be updated")
		}
		if cache.invalidated != 1 {
			t.Errorf("Expected one cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("unknown webhook", func(t *testing.T) {
		repo := &fakeWebhookRepo{updateErr: repository.ErrWebhookNotFound}
		uc := New(repo, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.UpdateConfig(ctx, adminScope(), "missing", webhook.ConfigInput{Name: "x"}); !errors.Is(err, webhook.ErrWebhookNotFound) {
			t.Errorf("Expected ErrWebhookNotFound, got %v", err)
		}
	})
}

func TestDeleteConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and invalidates", func(t *testing.T) {
		repo := &fakeWebhookRepo{}
		cache := &fakeCache{}
		uc := New(repo, cache, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if err := uc.DeleteConfig(ctx, adminScope(), "wh-1"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != "wh-1" {
			t.Errorf("Delete call mismatch: %v", repo.deleted)
		}
		if cache.invalidated != 1 {
			t.Errorf("Expected one cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("unknown webhook", func(t *testing.T) {
		repo := &fakeWebhookRepo{deleteErr: repository.ErrWebhookNotFound}
		uc := New(repo, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if err := uc.DeleteConfig(ctx, adminScope(), "missing"); !errors.Is(err, webhook.ErrWebhookNotFound) {
			t.Errorf("Expected ErrWebhookNotFound, got %v", err)
		}
	})
}

func TestListConfigs(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin is denied", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.ListConfigs(ctx, userScope(), ""); !errors.Is(err, webhook.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("unknown type filter", func(t *testing.T) {
		uc := New(&fakeWebhookRepo{}, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		if _, err := uc.ListConfigs(ctx, adminScope(), "batch"); !errors.Is(err, webhook.ErrInvalidWebhookType) {
			t.Errorf("Expected ErrInvalidWebhookType, got %v", err)
		}
	})

	t.Run("returns stored configs", func(t *testing.T) {
		repo := &fakeWebhookRepo{all: []*model.Webhook{
			{ID: "wh-1", Name: "primary"},
			{ID: "wh-2", Name: "backup"},
		}}
		uc := New(repo, &fakeCache{}, &fakeClient{}, &fakeReportUC{}, &fakeScheduleUC{}, &fakeEmitter{}, log.NewNoop())

		whs, err := uc.ListConfigs(ctx, adminScope(), "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(whs) != 2 {
			t.Errorf("Expected 2 configs, got %d", len(whs))
		}
	})
}
