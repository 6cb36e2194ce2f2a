package schedule

import (
	"fmt"
	"time"
)

// Remaining returns a human-readable countdown to target: the single largest
// whole unit of days, hours, or minutes, "Less than a minute" under one
// minute, and "Now" once the target has elapsed.
func Remaining(target, now time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return "Now"
	}

	seconds := int(diff / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return countUnit(days, "day")
	case hours > 0:
		return countUnit(hours, "hour")
	case minutes > 0:
		return countUnit(minutes, "minute")
	default:
		return "Less than a minute"
	}
}

// FormatDisplay renders a reminder time relative to now: "Today at 3:04 PM",
// "Tomorrow at 3:04 PM", or the full date for anything further out.
func FormatDisplay(t, now time.Time) string {
	switch {
	case sameDay(t, now):
		return "Today at " + t.Format("3:04 PM")
	case sameDay(t, now.AddDate(0, 0, 1)):
		return "Tomorrow at " + t.Format("3:04 PM")
	default:
		return t.Format("Jan 2, 2006 at 3:04 PM")
	}
}

func countUnit(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
