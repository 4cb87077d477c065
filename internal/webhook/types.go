package webhook

import "time"

// DispatchInput is a user research request to fan out.
type DispatchInput struct {
	// ResearchType selects the endpoint pool: on-demand or recurring.
	ResearchType string
	Industry     string
	SubNiche     string
	Geography    string
	// Email receives the generated report. Blank falls back to the
	// requester's login email.
	Email string
	Notes string
	// Frequency is required for recurring requests.
	Frequency string
}

// DispatchOutput is the reconciled result of a successful dispatch.
type DispatchOutput struct {
	ExecutionID string
	// ScheduleID is set for recurring requests.
	ScheduleID string
	// WebhookName identifies the endpoint whose response was used.
	WebhookName string
	Report      string
	Message     string
	Timestamp   time.Time
}

// ConfigInput carries webhook config fields for create and update.
type ConfigInput struct {
	Name        string
	URL         string
	Type        string
	Active      *bool
	Description string
}
