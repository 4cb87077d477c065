package report

import (
	"sort"
	"strings"
)

// Sort keys accepted by SortReports.
const (
	SortByTitle    = "title"
	SortByCategory = "category"
)

// SortReports re-sorts an already-fetched page of view models without
// touching storage. Unknown keys leave the slice in its fetched order
// (run_at descending). The sort is stable and case-insensitive.
func SortReports(reports []ReportView, key string) []ReportView {
	out := make([]ReportView, len(reports))
	copy(out, reports)

	switch key {
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortByCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Industry) < strings.ToLower(out[j].Industry)
		})
	}

	return out
}
