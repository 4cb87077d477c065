package usecase

import "testing"

func TestExtractReports(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		want      string
		wantEmail string
	}{
		{"object with webReport", `{"webReport":"# Report"}`, "# Report", ""},
		{"object with both reports", `{"webReport":"# Web","emailReport":"# Email version"}`, "# Web", "# Email version"},
		{"emailReport without webReport is unusable", `{"emailReport":"# Email only"}`, "", "# Email only"},
		{"array takes first element", `[{"webReport":"# First"},{"webReport":"# Second"}]`, "# First", ""},
		{"array element carries emailReport", `[{"webReport":"# First","emailReport":"# First mail"}]`, "# First", "# First mail"},
		{"empty array", `[]`, "", ""},
		{"object without webReport", `{"status":"ok"}`, "", ""},
		{"non-JSON body is the raw report", "# Plain markdown report", "# Plain markdown report", ""},
		{"JSON string body", `"# Quoted report"`, "# Quoted report", ""},
		{"empty body", "", "", ""},
		{"whitespace body", "   \n", "", ""},
		{"reports are trimmed", `{"webReport":"  # Report  ","emailReport":"  # Mail  "}`, "# Report", "# Mail"},
		{"non-string fields", `{"webReport":42,"emailReport":true}`, "", ""},
		{"array of strings", `["# First","# Second"]`, "# First", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractReports([]byte(tc.body))
			if got.web != tc.want {
				t.Errorf("Got web %q, want %q", got.web, tc.want)
			}
			if got.email != tc.wantEmail {
				t.Errorf("Got email %q, want %q", got.email, tc.wantEmail)
			}
		})
	}
}
