package utils

import (
	"fmt"
	"time"
)

// FormatTime formats a duration to a short human readable value. Durations
// under a second are shown in milliseconds.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	secs := int64(d / time.Second)
	days, secs := secs/86400, secs%86400
	hours, secs := secs/3600, secs%3600
	mins, secs := secs/60, secs%60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd:%dh:%dm:%ds", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%dh:%dm:%ds", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%dm:%ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
