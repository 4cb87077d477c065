package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/webhook"
	"market-intel-srv/internal/webhook/repository"
	pkgRedis "market-intel-srv/pkg/redis"
)

// loadActiveConfigs is the dispatcher's cache-aside read: Redis first,
// Postgres on miss, repopulate best-effort.
func (uc *implUseCase) loadActiveConfigs(ctx context.Context, webhookType string) ([]*model.Webhook, error) {
	cached, err := uc.cache.GetActiveByType(ctx, webhookType)
	if err == nil {
		return cached, nil
	}
	if !pkgRedis.IsNotFound(err) {
		uc.l.Warnf(ctx, "webhook.usecase.loadActiveConfigs: Cache read failed, falling back to Postgres: %v", err)
	}

	whs, err := uc.repo.ListActiveByType(ctx, webhookType)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SaveActiveByType(ctx, webhookType, whs); err != nil {
		uc.l.Warnf(ctx, "webhook.usecase.loadActiveConfigs: Failed to repopulate cache: %v", err)
	}

	return whs, nil
}

// ListConfigs returns webhook configs, optionally narrowed by type.
func (uc *implUseCase) ListConfigs(ctx context.Context, sc model.Scope, typeFilter string) ([]model.Webhook, error) {
	if !sc.IsAdmin() {
		return nil, webhook.ErrPermissionDenied
	}

	typeFilter = strings.ToLower(strings.TrimSpace(typeFilter))
	if typeFilter != "" && !model.IsValidWebhookType(typeFilter) {
		return nil, webhook.ErrInvalidWebhookType
	}

	whs, err := uc.repo.List(ctx, repository.ListWebhooksOptions{Type: typeFilter})
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.ListConfigs: Failed to list webhooks: %v", err)
		return nil, err
	}

	out := make([]model.Webhook, 0, len(whs))
	for _, w := range whs {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (uc *implUseCase) CreateConfig(ctx context.Context, sc model.Scope, input webhook.ConfigInput) (model.Webhook, error) {
	if !sc.IsAdmin() {
		return model.Webhook{}, webhook.ErrPermissionDenied
	}
	if input.Name == "" || input.URL == "" {
		return model.Webhook{}, webhook.ErrNameAndURLRequired
	}

	whType := strings.ToLower(strings.TrimSpace(input.Type))
	if !model.IsValidWebhookType(whType) {
		return model.Webhook{}, webhook.ErrInvalidWebhookType
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	wh, err := uc.repo.Create(ctx, repository.CreateWebhookOptions{
		ID:          uuid.New().String(),
		Name:        input.Name,
		URL:         input.URL,
		Type:        whType,
		Active:      active,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.CreateConfig: Failed to create webhook: %v", err)
		return model.Webhook{}, err
	}

	uc.invalidateCache(ctx)
	uc.emitConfigChanged(ctx, sc, wh.ID, "created")

	return *wh, nil
}

func (uc *implUseCase) UpdateConfig(ctx context.Context, sc model.Scope, id string, input webhook.ConfigInput) (model.Webhook, error) {
	if !sc.IsAdmin() {
		return model.Webhook{}, webhook.ErrPermissionDenied
	}

	opts := repository.UpdateWebhookOptions{ID: id, Active: input.Active}
	if input.Name != "" {
		opts.Name = &input.Name
	}
	if input.URL != "" {
		opts.URL = &input.URL
	}
	if input.Type != "" {
		whType := strings.ToLower(strings.TrimSpace(input.Type))
		if !model.IsValidWebhookType(whType) {
			return model.Webhook{}, webhook.ErrInvalidWebhookType
		}
		opts.Type = &whType
	}
	if input.Description != "" {
		opts.Description = &input.Description
	}

	wh, err := uc.repo.Update(ctx, opts)
	if err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			return model.Webhook{}, webhook.ErrWebhookNotFound
		}
		uc.l.Errorf(ctx, "webhook.usecase.UpdateConfig: Failed to update webhook %s: %v", id, err)
		return model.Webhook{}, err
	}

	uc.invalidateCache(ctx)
	uc.emitConfigChanged(ctx, sc, id, "updated")

	return *wh, nil
}

func (uc *implUseCase) DeleteConfig(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return webhook.ErrPermissionDenied
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			return webhook.ErrWebhookNotFound
		}
		uc.l.Errorf(ctx, "webhook.usecase.DeleteConfig: Failed to delete webhook %s: %v", id, err)
		return err
	}

	uc.invalidateCache(ctx)
	uc.emitConfigChanged(ctx, sc, id, "deleted")

	return nil
}

func (uc *implUseCase) invalidateCache(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.l.Warnf(ctx, "webhook.usecase.invalidateCache: Failed to invalidate cache: %v", err)
	}
}

func (uc *implUseCase) emitConfigChanged(ctx context.Context, sc model.Scope, id, action string) {
	uc.emitter.Emit(ctx, activity.Event{
		Type:   activity.TypeWebhookConfigSet,
		UserID: sc.UserID,
		Email:  sc.Email,
		Detail: action + " " + id,
	})
}
