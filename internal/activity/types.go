package activity

import "time"

// Event types published to the activity topic.
const (
	TypeRunStarted       = "run_started"
	TypeRunCompleted     = "run_completed"
	TypeRunFailed        = "run_failed"
	TypeReportSaved      = "report_saved"
	TypeScheduleCreated  = "schedule_created"
	TypeSchedulePaused   = "schedule_paused"
	TypeScheduleResumed  = "schedule_resumed"
	TypeScheduleDeleted  = "schedule_deleted"
	TypeWebhookConfigSet = "webhook_config_changed"
)

// Event is a single activity record published to Kafka.
// Consumers build audit trails and usage dashboards from these.
type Event struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	ExecutionID string    `json:"execution_id,omitempty"`
	ScheduleID  string    `json:"schedule_id,omitempty"`
	Frequency   string    `json:"frequency,omitempty"`
	Status      string    `json:"status,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
