package engine

import (
	"fmt"
	"time"
)

// FormatCountdown renders the time remaining until target as the two most
// significant non-zero units: "Xh Ym", "Xm Ys" or "Xs". Targets at or
// before now render as "Now".
func FormatCountdown(target, now time.Time) string {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return "Now"
	}

	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	seconds := int(remaining.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
