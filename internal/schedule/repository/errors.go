package repository

import "errors"

var (
	ErrScheduleNotFound     = errors.New("repository: schedule not found")
	ErrScheduleCreateFailed = errors.New("repository: failed to create schedule")
	ErrScheduleUpdateFailed = errors.New("repository: failed to update schedule")
	ErrScheduleDeleteFailed = errors.New("repository: failed to delete schedule")
)
