package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"market-intel-srv/internal/model"
)

const (
	activeByTypeKeyFmt = "webhooks:active:%s"
	activeByTypeTTL    = 5 * time.Minute
)

func (r *implCacheRepository) GetActiveByType(ctx context.Context, webhookType string) ([]*model.Webhook, error) {
	key := fmt.Sprintf(activeByTypeKeyFmt, webhookType)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var whs []*model.Webhook
	if err := json.Unmarshal([]byte(data), &whs); err != nil {
		r.l.Errorf(ctx, "webhook.repository.redis.GetActiveByType: Failed to unmarshal webhooks: %v", err)
		return nil, err
	}
	return whs, nil
}

func (r *implCacheRepository) SaveActiveByType(ctx context.Context, webhookType string, webhooks []*model.Webhook) error {
	key := fmt.Sprintf(activeByTypeKeyFmt, webhookType)
	data, err := json.Marshal(webhooks)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key, data, activeByTypeTTL); err != nil {
		r.l.Errorf(ctx, "webhook.repository.redis.SaveActiveByType: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// Invalidate drops both type listings. The key space is fixed, so no
// SCAN is needed.
func (r *implCacheRepository) Invalidate(ctx context.Context) error {
	keys := []string{
		fmt.Sprintf(activeByTypeKeyFmt, model.WebhookTypeOnDemand),
		fmt.Sprintf(activeByTypeKeyFmt, model.WebhookTypeRecurring),
	}
	if err := r.redis.Delete(ctx, keys...); err != nil {
		r.l.Errorf(ctx, "webhook.repository.redis.Invalidate: Failed to delete cache keys: %v", err)
		return err
	}
	return nil
}
