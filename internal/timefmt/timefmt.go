// Package timefmt renders timestamps for display.
package timefmt

import (
	"fmt"
	"time"
)

// absoluteLayout is day, short month, 24-hour time. Month names come from the
// time package, so output never depends on the user's locale.
const absoluteLayout = "02 Jan, 15:04"

// Relative formats ts as an age relative to now. Counts are truncated, never
// rounded. Timestamps in the future render as "Just now".
func Relative(ts, now time.Time) string {
	age := now.Sub(ts)
	switch {
	case age < time.Minute:
		return "Just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}

// Absolute formats ts in UTC, e.g. "07 Mar, 14:05".
func Absolute(ts time.Time) string {
	return ts.UTC().Format(absoluteLayout)
}

// Clock formats the header clock, e.g. "14:05 UTC".
func Clock(now time.Time) string {
	return now.UTC().Format("15:04") + " UTC"
}
