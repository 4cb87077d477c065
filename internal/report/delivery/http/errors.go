package http

import (
	"errors"

	"market-intel-srv/internal/report"
	pkgErrors "market-intel-srv/pkg/errors"
)

var (
	errInvalidBody        = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidQuery       = pkgErrors.NewHTTPError(400, "Invalid query parameters")
	errExecutionIDMissing = pkgErrors.NewHTTPError(400, "Execution ID is required")
	errScheduleIDMissing  = pkgErrors.NewHTTPError(400, "Schedule ID is required")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errPermissionDenied   = pkgErrors.NewHTTPError(403, "You do not have access to this report")
	errMissingFields      = pkgErrors.NewHTTPError(400, "Required fields are missing")
	errInvalidEmail       = pkgErrors.NewHTTPError(400, "Invalid email address")
	errSaveFailed         = pkgErrors.NewHTTPError(500, "Failed to save report")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrSaveExecution):
		return errSaveFailed
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrPermissionDenied):
		return errPermissionDenied
	case errors.Is(err, report.ErrScheduleIDMissing):
		return errScheduleIDMissing
	case errors.Is(err, report.ErrMissingFields):
		return errMissingFields
	case errors.Is(err, report.ErrInvalidEmail):
		return errInvalidEmail
	default:
		panic(err)
	}
}
