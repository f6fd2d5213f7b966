package utils

import (
	"fmt"
	"time"
)

// FormatTime formats a duration to a short human readable value.
// Runs under a second keep millisecond precision.
func FormatTime(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm:%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh:%dm:%ds", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}
