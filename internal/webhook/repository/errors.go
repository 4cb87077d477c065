package repository

import "errors"

var (
	ErrWebhookNotFound     = errors.New("repository: webhook not found")
	ErrWebhookCreateFailed = errors.New("repository: failed to create webhook")
	ErrWebhookUpdateFailed = errors.New("repository: failed to update webhook")
	ErrWebhookDeleteFailed = errors.New("repository: failed to delete webhook")
)
