package repository

import "time"

type CreateScheduleOptions struct {
	ID        string
	UserID    string
	Industry  string
	SubNiche  string
	Geography string
	Email     string
	Notes     string
	Frequency string
	NextRun   *time.Time
}

type ListSchedulesOptions struct {
	// UserID restricts the listing to one owner when non-empty.
	UserID string
	// ActiveOnly keeps only active schedules.
	ActiveOnly bool
}

type RecordExecutionOptions struct {
	ScheduleID string
	RunAt      time.Time
	// NextRun is the advanced next-run time; nil leaves it untouched.
	NextRun *time.Time
}
