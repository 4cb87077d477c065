package repository

import (
	"context"

	"market-intel-srv/internal/model"
)

// WebhookRepository abstracts webhook config storage so the dispatcher
// never depends on a concrete backend.
//
//go:generate mockery --name WebhookRepository
type WebhookRepository interface {
	Create(ctx context.Context, opts CreateWebhookOptions) (*model.Webhook, error)
	GetByID(ctx context.Context, id string) (*model.Webhook, error)
	List(ctx context.Context, opts ListWebhooksOptions) ([]*model.Webhook, error)
	// ListActiveByType is the dispatcher's read path: active configs of
	// one type only.
	ListActiveByType(ctx context.Context, webhookType string) ([]*model.Webhook, error)
	Update(ctx context.Context, opts UpdateWebhookOptions) (*model.Webhook, error)
	Delete(ctx context.Context, id string) error
}

// CacheRepository caches the dispatcher's hot read. Misses return
// pkg/redis's not-found error; the usecase falls back to Postgres and
// repopulates.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetActiveByType(ctx context.Context, webhookType string) ([]*model.Webhook, error)
	SaveActiveByType(ctx context.Context, webhookType string, webhooks []*model.Webhook) error
	// Invalidate drops every cached webhook listing. Called on any
	// config write.
	Invalidate(ctx context.Context) error
}
