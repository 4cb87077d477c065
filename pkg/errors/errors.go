package errors

import "fmt"

// HTTPError carries an HTTP status alongside a client-safe message.
// Delivery layers map domain errors onto these; pkg/response renders them.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    string
}

// NewHTTPError creates an HTTPError with a status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// WithDetails returns a copy of the error with a human-readable details
// string attached (e.g. validation messages joined by comma).
func (e *HTTPError) WithDetails(details string) *HTTPError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *HTTPError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
