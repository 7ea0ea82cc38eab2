package dates

import (
	"testing"
	"time"
)

func TestNormalize_AcceptedFormats(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"2024-03-15", "2024-03-15"},
		{"15/03/2024", "2024-03-15"},
		{"15.03.2024", "2024-03-15"},
		{"2000-01-01", "2000-01-01"},
		{"31/12/1999", "1999-12-31"},
	}

	for _, tc := range cases {
		normalized, err := Normalize(tc.input)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", tc.input, err)
		}
		if normalized != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.input, normalized, tc.expected)
		}
	}
}

func TestNormalize_RejectsUnknownFormats(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "03-15-2024", "2024/03/15", "15-03-2024"} {
		if _, err := Normalize(input); err == nil {
			t.Errorf("Normalize(%q) should have failed", input)
		}
	}
}

func TestTruncate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 58, 123, time.UTC)
	truncated := Truncate(ts)

	expected := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !truncated.Equal(expected) {
		t.Errorf("Truncate = %v, expected %v", truncated, expected)
	}
}
