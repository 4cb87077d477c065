package usecase

import (
	"bytes"
	"encoding/json"
	"strings"
)

// endpointReport is the report content decoded from an endpoint body.
// An empty web field marks the response as unusable; the email variant
// is optional and defaults downstream to the web report.
type endpointReport struct {
	web   string
	email string
}

// extractReports pulls the report texts out of an endpoint response
// body. Bodies are JSON with a webReport field and an optional
// emailReport field; array bodies use their first element; a body that
// is not JSON at all is taken as the raw web report text.
func extractReports(body []byte) endpointReport {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return endpointReport{}
	}

	var parsed any
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return endpointReport{web: string(trimmed)}
	}

	if arr, ok := parsed.([]any); ok {
		if len(arr) == 0 {
			return endpointReport{}
		}
		parsed = arr[0]
	}

	switch v := parsed.(type) {
	case map[string]any:
		var rep endpointReport
		if s, ok := v["webReport"].(string); ok {
			rep.web = strings.TrimSpace(s)
		}
		if s, ok := v["emailReport"].(string); ok {
			rep.email = strings.TrimSpace(s)
		}
		return rep
	case string:
		return endpointReport{web: strings.TrimSpace(v)}
	default:
		return endpointReport{}
	}
}
