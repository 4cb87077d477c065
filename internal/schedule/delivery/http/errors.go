package http

import (
	"errors"

	"market-intel-srv/internal/schedule"
	pkgErrors "market-intel-srv/pkg/errors"
)

var (
	errScheduleIDRequired = pkgErrors.NewHTTPError(400, "Schedule ID is required")
	errScheduleNotFound   = pkgErrors.NewHTTPError(404, "Schedule not found")
	errPermissionDenied   = pkgErrors.NewHTTPError(403, "You do not have access to this schedule")
	errInvalidFrequency   = pkgErrors.NewHTTPError(400, "Invalid schedule frequency")
	errScheduleNotSaved   = pkgErrors.NewHTTPError(500, "Failed to save schedule")
	errScheduleNotUpdated = pkgErrors.NewHTTPError(500, "Failed to update schedule")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return errScheduleNotFound
	case errors.Is(err, schedule.ErrPermissionDenied):
		return errPermissionDenied
	case errors.Is(err, schedule.ErrInvalidFrequency):
		return errInvalidFrequency
	case errors.Is(err, schedule.ErrScheduleNotSaved):
		return errScheduleNotSaved
	case errors.Is(err, schedule.ErrScheduleNotUpdate):
		return errScheduleNotUpdated
	default:
		panic(err)
	}
}
