package model

import "time"

const (
	FrequencyOnDemand = "on-demand"
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"

	ReportStatusSuccess = "success"
	ReportStatusFailed  = "failed"
)

// Frequencies lists every accepted frequency value.
var Frequencies = []string{
	FrequencyOnDemand,
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
}

// Report is one execution log entry: a single generated research report.
// Rows are written exactly once and never mutated; deletion is an explicit
// hard delete.
type Report struct {
	ExecutionID string    `gorm:"column:execution_id;primaryKey"`
	ScheduleID  *string   `gorm:"column:schedule_id;index"`
	UserID      string    `gorm:"column:user_id;index;not null"`
	Industry    string    `gorm:"column:industry"`
	SubNiche    string    `gorm:"column:sub_niche"`
	Geography   string    `gorm:"column:geography"`
	Email       string    `gorm:"column:email"`
	Notes       string    `gorm:"column:notes;type:text"`
	Frequency   string    `gorm:"column:frequency"`
	RunAt       time.Time `gorm:"column:run_at;index"`
	IsFirstRun  bool      `gorm:"column:is_first_run"`
	FinalReport string    `gorm:"column:final_report;type:text"`
	EmailReport string    `gorm:"column:email_report;type:text"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Report) TableName() string {
	return "reports"
}

// IsValidFrequency reports whether f (already lowercased by the caller)
// is one of the accepted frequency values.
func IsValidFrequency(f string) bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}
