package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrPermissionDenied  = errors.New("caller does not own this schedule")
	ErrInvalidFrequency  = errors.New("invalid schedule frequency")
	ErrUserIDRequired    = errors.New("user_id is required")
	ErrScheduleNotSaved  = errors.New("failed to save schedule")
	ErrScheduleNotUpdate = errors.New("failed to update schedule")
)
