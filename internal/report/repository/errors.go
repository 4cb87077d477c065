package repository

import "errors"

var (
	ErrReportNotFound     = errors.New("repository: report not found")
	ErrReportCreateFailed = errors.New("repository: failed to create report")
	ErrReportDeleteFailed = errors.New("repository: failed to delete report")
)
