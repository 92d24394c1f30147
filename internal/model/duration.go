package model

import (
	"fmt"
)

// FormatDuration formats a duration in seconds as mm:ss or hh:mm:ss,
// or "—" if unknown
func FormatDuration(seconds float64) string {
	total := int(seconds)
	if total <= 0 {
		return "—"
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
