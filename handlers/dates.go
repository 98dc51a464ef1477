package handlers

import (
	"time"
)

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// normalizeDeadline reduces arbitrary deadline input to its calendar
// date as YYYY-MM-DD. Time-of-day and zone offsets are discarded, not
// converted, so an evening timestamp never shifts across midnight.
// Empty or unparsable input becomes nil and is stored as NULL.
func normalizeDeadline(input string) *string {
	if input == "" {
		return nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			date := t.Format("2006-01-02")
			return &date
		}
	}

	return nil
}
