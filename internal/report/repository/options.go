package repository

import "time"

type CreateReportOptions struct {
	ExecutionID string
	ScheduleID  *string
	UserID      string
	Industry    string
	SubNiche    string
	Geography   string
	Email       string
	Notes       string
	Frequency   string
	RunAt       time.Time
	IsFirstRun  bool
	FinalReport string
	EmailReport string
	Status      string
}

type ListReportsOptions struct {
	// UserID restricts the listing to one owner when non-empty. Access
	// control lives in this filter: it must be set for non-admin callers.
	UserID string
	// ScheduleID narrows to one schedule when non-empty.
	ScheduleID string
	Limit      int64
	Offset     int64
}
