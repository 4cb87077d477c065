package report

import (
	"fmt"
	"strings"
	"time"

	"market-intel-srv/internal/model"
)

// FieldError is one validation failure, keyed by the payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateReportRun checks an untyped report-run payload and returns every
// violation found. An empty result means the payload is valid. The
// function has no side effects; callers join the messages with ", " for
// the response details string.
func ValidateReportRun(payload map[string]any) []FieldError {
	errs := []FieldError{}

	for _, field := range []string{"user_id", "schedule_id", "industry", "sub_niche"} {
		if stringField(payload, field) == "" {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
		}
	}

	freq, ok := payload["frequency"].(string)
	if !ok || freq == "" {
		errs = append(errs, FieldError{Field: "frequency", Message: "frequency is required"})
	} else if !model.IsValidFrequency(strings.ToLower(strings.TrimSpace(freq))) {
		errs = append(errs, FieldError{
			Field:   "frequency",
			Message: fmt.Sprintf("frequency must be one of: %s", strings.Join(model.Frequencies, ", ")),
		})
	}

	runAt, ok := payload["run_at"].(string)
	if !ok || runAt == "" {
		errs = append(errs, FieldError{Field: "run_at", Message: "run_at is required"})
	} else if _, err := time.Parse(time.RFC3339, runAt); err != nil {
		errs = append(errs, FieldError{Field: "run_at", Message: "run_at must be a valid RFC3339 timestamp"})
	}

	if _, ok := payload["is_first_run"].(bool); !ok {
		errs = append(errs, FieldError{Field: "is_first_run", Message: "is_first_run must be a boolean"})
	}

	if stringField(payload, "final_report") == "" {
		errs = append(errs, FieldError{Field: "final_report", Message: "final_report is required"})
	}

	return errs
}

// NewReportRunInput builds the typed input from a payload that already
// passed ValidateReportRun.
func NewReportRunInput(payload map[string]any) ReportRunInput {
	runAt, _ := time.Parse(time.RFC3339, stringField(payload, "run_at"))
	isFirstRun, _ := payload["is_first_run"].(bool)

	return ReportRunInput{
		UserID:      stringField(payload, "user_id"),
		ScheduleID:  stringField(payload, "schedule_id"),
		Industry:    stringField(payload, "industry"),
		SubNiche:    stringField(payload, "sub_niche"),
		Geography:   stringField(payload, "geography"),
		Email:       stringField(payload, "email"),
		Notes:       stringField(payload, "notes"),
		Frequency:   strings.ToLower(strings.TrimSpace(stringField(payload, "frequency"))),
		RunAt:       runAt,
		IsFirstRun:  isFirstRun,
		FinalReport: stringField(payload, "final_report"),
		EmailReport: stringField(payload, "email_report"),
	}
}

// JoinFieldErrors flattens validation failures into the details string.
func JoinFieldErrors(errs []FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, ", ")
}

func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return strings.TrimSpace(v)
}
