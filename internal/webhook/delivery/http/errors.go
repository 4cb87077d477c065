package http

import (
	"errors"

	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/webhook"
	pkgErrors "market-intel-srv/pkg/errors"
)

var (
	errInvalidBody         = pkgErrors.NewHTTPError(400, "Invalid request body")
	errWebhookIDRequired   = pkgErrors.NewHTTPError(400, "Webhook ID is required")
	errNoActiveWebhooks    = pkgErrors.NewHTTPError(422, "No research webhook is configured. Please configure a webhook before submitting research.")
	errAllWebhooksFailed   = pkgErrors.NewHTTPError(502, "Research could not be completed: all webhook endpoints failed")
	errReportNotSaved      = pkgErrors.NewHTTPError(500, "Report was generated but could not be saved")
	errInvalidResearchType = pkgErrors.NewHTTPError(400, "Research type must be on-demand or recurring")
	errFrequencyRequired   = pkgErrors.NewHTTPError(400, "A valid frequency is required for recurring research")
	errWebhookNotFound     = pkgErrors.NewHTTPError(404, "Webhook not found")
	errInvalidWebhookType  = pkgErrors.NewHTTPError(400, "Webhook type must be on-demand or recurring")
	errNameAndURLRequired  = pkgErrors.NewHTTPError(400, "Webhook name and URL are required")
	errPermissionDenied    = pkgErrors.NewHTTPError(403, "Admin access required")
	errScheduleNotSaved    = pkgErrors.NewHTTPError(500, "Failed to create schedule")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, webhook.ErrNoActiveWebhooks):
		return errNoActiveWebhooks
	case errors.Is(err, webhook.ErrAllWebhooksFailed):
		return errAllWebhooksFailed
	case errors.Is(err, webhook.ErrReportNotSaved):
		return errReportNotSaved
	case errors.Is(err, webhook.ErrInvalidResearchType):
		return errInvalidResearchType
	case errors.Is(err, webhook.ErrFrequencyRequired):
		return errFrequencyRequired
	case errors.Is(err, webhook.ErrWebhookNotFound):
		return errWebhookNotFound
	case errors.Is(err, webhook.ErrInvalidWebhookType):
		return errInvalidWebhookType
	case errors.Is(err, webhook.ErrNameAndURLRequired):
		return errNameAndURLRequired
	case errors.Is(err, webhook.ErrPermissionDenied):
		return errPermissionDenied
	case errors.Is(err, schedule.ErrScheduleNotSaved), errors.Is(err, schedule.ErrInvalidFrequency):
		return errScheduleNotSaved
	default:
		panic(err)
	}
}
