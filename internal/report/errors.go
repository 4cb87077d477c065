package report

import "errors"

var (
	// ErrSaveExecution marks the fatal failure of the execution record
	// write. Wrapped with the storage detail at the call site.
	ErrSaveExecution = errors.New("failed to save execution record")

	ErrReportNotFound    = errors.New("report not found")
	ErrPermissionDenied  = errors.New("caller does not own this report")
	ErrScheduleIDMissing = errors.New("schedule_id is required")
	ErrMissingFields     = errors.New("required fields are missing")
	ErrInvalidEmail      = errors.New("invalid email address")
)
