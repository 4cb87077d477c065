package util

import "testing"

func TestIsEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.io"}
	for _, e := range valid {
		if err := IsEmail(e); err != nil {
			t.Errorf("%q should be valid: %v", e, err)
		}
	}

	invalid := []string{"", "plain", "user@", "@example.com", "user@host"}
	for _, e := range invalid {
		if err := IsEmail(e); err == nil {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestRandomString(t *testing.T) {
	s := RandomString(9)
	if len(s) != 9 {
		t.Fatalf("Length mismatch: got %d, want 9", len(s))
	}

	if RandomString(9) == s && RandomString(9) == s {
		t.Error("Consecutive random strings should differ")
	}
}
