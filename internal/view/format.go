// Package view assembles the data handed to page templates and formats
// values for display.
package view

import "time"

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders t for display. format is "full" or "medium";
// anything else falls back to medium.
func FormatDateTime(t time.Time, format string) string {
	if format == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}
