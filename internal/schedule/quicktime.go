package schedule

import "time"

// QuickTimeOptions are the quick-pick offsets, in minutes, offered when
// creating a reminder.
var QuickTimeOptions = []int{5, 15, 30, 60}

// QuickTime returns now advanced by the given number of minutes.
func QuickTime(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}
