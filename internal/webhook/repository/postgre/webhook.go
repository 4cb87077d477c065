package postgre

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"market-intel-srv/internal/model"
	"market-intel-srv/internal/webhook/repository"
)

// Create - Insert a new webhook config.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateWebhookOptions) (*model.Webhook, error) {
	now := time.Now()
	wh := model.Webhook{
		ID:          opts.ID,
		Name:        opts.Name,
		URL:         opts.URL,
		Type:        opts.Type,
		Active:      opts.Active,
		Description: opts.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(&wh).Error; err != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.Create: Failed to insert webhook: %v", err)
		return nil, repository.ErrWebhookCreateFailed
	}

	return &wh, nil
}

// GetByID - Get webhook config by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (*model.Webhook, error) {
	var wh model.Webhook
	err := r.db.WithContext(ctx).First(&wh, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrWebhookNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.GetByID: Failed to get webhook: %v", err)
		return nil, err
	}

	return &wh, nil
}

// List - List webhook configs with optional type filter.
func (r *implRepository) List(ctx context.Context, opts repository.ListWebhooksOptions) ([]*model.Webhook, error) {
	q := r.db.WithContext(ctx).Model(&model.Webhook{})
	if opts.Type != "" {
		q = q.Where("type = ?", opts.Type)
	}

	var whs []*model.Webhook
	if err := q.Order("created_at ASC").Find(&whs).Error; err != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.List: Failed to list webhooks: %v", err)
		return nil, err
	}

	return whs, nil
}

// ListActiveByType - Active configs of one type, in registration order.
func (r *implRepository) ListActiveByType(ctx context.Context, webhookType string) ([]*model.Webhook, error) {
	var whs []*model.Webhook
	err := r.db.WithContext(ctx).
		Where("type = ? AND active = ?", webhookType, true).
		Order("created_at ASC").
		Find(&whs).Error
	if err != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.ListActiveByType: Failed to list webhooks: %v", err)
		return nil, err
	}

	return whs, nil
}

// Update - Partial update of a webhook config.
func (r *implRepository) Update(ctx context.Context, opts repository.UpdateWebhookOptions) (*model.Webhook, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if opts.Name != nil {
		updates["name"] = *opts.Name
	}
	if opts.URL != nil {
		updates["url"] = *opts.URL
	}
	if opts.Type != nil {
		updates["type"] = *opts.Type
	}
	if opts.Active != nil {
		updates["active"] = *opts.Active
	}
	if opts.Description != nil {
		updates["description"] = *opts.Description
	}

	res := r.db.WithContext(ctx).Model(&model.Webhook{}).
		Where("id = ?", opts.ID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.Update: Failed to update webhook: %v", res.Error)
		return nil, repository.ErrWebhookUpdateFailed
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrWebhookNotFound
	}

	return r.GetByID(ctx, opts.ID)
}

// Delete - Hard delete of a webhook config.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Webhook{}, "id = ?", id)
	if res.Error != nil {
		r.l.Errorf(ctx, "webhook.repository.postgre.Delete: Failed to delete webhook: %v", res.Error)
		return repository.ErrWebhookDeleteFailed
	}
	if res.RowsAffected == 0 {
		return repository.ErrWebhookNotFound
	}

	return nil
}
