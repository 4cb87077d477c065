package response

// ErrResp is the stable error body crossing the API boundary.
// Raw internal error text never goes into Error; Details carries the
// client-safe explanation (e.g. validation messages joined by comma).
type ErrResp struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}
