package schedule

import "time"

// CreateInput carries the fields of a new recurring schedule.
type CreateInput struct {
	UserID    string
	Industry  string
	SubNiche  string
	Geography string
	Email     string
	Notes     string
	Frequency string
	RunAt     time.Time
}
