package webhook

import "errors"

var (
	// ErrNoActiveWebhooks means no endpoint of the requested type is
	// configured and active. A setup problem, not a generation failure.
	ErrNoActiveWebhooks = errors.New("no active webhooks configured for this research type")

	// ErrAllWebhooksFailed aggregates a fan-out where no endpoint
	// produced a usable report. Nothing was persisted.
	ErrAllWebhooksFailed = errors.New("all webhook endpoints failed")

	// ErrReportNotSaved means a report was generated but the
	// persistence handoff failed. Distinct from generation failure: the
	// content exists.
	ErrReportNotSaved = errors.New("report generated but not saved")

	ErrInvalidResearchType = errors.New("invalid research type")
	ErrFrequencyRequired   = errors.New("frequency is required for recurring research")
	ErrWebhookNotFound     = errors.New("webhook not found")
	ErrInvalidWebhookType  = errors.New("invalid webhook type")
	ErrNameAndURLRequired  = errors.New("name and url are required")
	ErrPermissionDenied    = errors.New("admin access required")
)
