package model

import "time"

// Schedule is the metadata record for a recurring research request.
// ExecutionCount is monotonically non-decreasing: exactly one increment
// per successful execution. Deleting a schedule never cascades to its
// past reports.
type Schedule struct {
	ID             string     `gorm:"column:id;primaryKey"`
	UserID         string     `gorm:"column:user_id;index;not null"`
	Industry       string     `gorm:"column:industry"`
	SubNiche       string     `gorm:"column:sub_niche"`
	Geography      string     `gorm:"column:geography"`
	Email          string     `gorm:"column:email"`
	Notes          string     `gorm:"column:notes;type:text"`
	Frequency      string     `gorm:"column:frequency"`
	Active         bool       `gorm:"column:active"`
	Initialized    bool       `gorm:"column:initialized"`
	NextRun        *time.Time `gorm:"column:next_run"`
	LastRun        *time.Time `gorm:"column:last_run"`
	ExecutionCount int64      `gorm:"column:execution_count"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// Interval returns the time between runs for the schedule's frequency.
// On-demand and unknown frequencies have no interval.
func (s Schedule) Interval() time.Duration {
	return FrequencyInterval(s.Frequency)
}

// FrequencyInterval maps a frequency value to its run interval.
func FrequencyInterval(frequency string) time.Duration {
	switch frequency {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	case FrequencyBiweekly:
		return 14 * 24 * time.Hour
	case FrequencyMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}
