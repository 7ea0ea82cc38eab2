// Package dates parses the calendar date formats accepted on input and
// normalizes them to the canonical YYYY-MM-DD form used everywhere else.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical storage format for calendar dates.
const Layout = "2006-01-02"

// acceptedLayouts are tried in order when parsing user supplied dates.
var acceptedLayouts = []string{Layout, "02/01/2006", "02.01.2006"}

// Parse accepts YYYY-MM-DD, DD/MM/YYYY or DD.MM.YYYY and returns the
// parsed calendar date (day granularity, UTC).
func Parse(value string) (time.Time, error) {
	for _, layout := range acceptedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("date format of %q is not recognized", value)
}

// Normalize parses value and reformats it canonically.
func Normalize(value string) (string, error) {
	parsed, err := Parse(value)
	if err != nil {
		return "", err
	}
	return parsed.Format(Layout), nil
}

// Truncate drops the time-of-day component, keeping the calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
