// Package schedule derives time-ordered views over reminder and house-task
// snapshots. All functions are pure: they take complete snapshots plus an
// evaluation time and return new values, so they are safe to call from any
// goroutine.
package schedule

import (
	"sort"
	"time"

	"voice-reminders/internal/model"
)

// Classified partitions a reminder snapshot around an evaluation time.
type Classified struct {
	// Upcoming holds reminders strictly after the evaluation time,
	// soonest first.
	Upcoming []model.Reminder

	// PastDue holds the rest, most recently missed first.
	PastDue []model.Reminder
}

// Classify partitions reminders by strict comparison against now and sorts
// each side. The result is a total partition of the input: every reminder
// lands in exactly one of the two lists.
func Classify(reminders []model.Reminder, now time.Time) Classified {
	var c Classified
	for _, r := range reminders {
		if r.Datetime.After(now) {
			c.Upcoming = append(c.Upcoming, r)
		} else {
			c.PastDue = append(c.PastDue, r)
		}
	}

	sort.SliceStable(c.Upcoming, func(i, j int) bool {
		return c.Upcoming[i].Datetime.Before(c.Upcoming[j].Datetime)
	})
	sort.SliceStable(c.PastDue, func(i, j int) bool {
		return c.PastDue[i].Datetime.After(c.PastDue[j].Datetime)
	})

	return c
}

// Next returns the soonest upcoming reminder, or nil when none is scheduled.
func Next(reminders []model.Reminder, now time.Time) *model.Reminder {
	c := Classify(reminders, now)
	if len(c.Upcoming) == 0 {
		return nil
	}
	next := c.Upcoming[0]
	return &next
}
