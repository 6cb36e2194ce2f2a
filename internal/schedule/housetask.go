package schedule

import (
	"time"

	"voice-reminders/internal/model"
)

// NextDue returns when the task should next be done. A task that has never
// been completed is due immediately.
func NextDue(task model.HouseTask, now time.Time) time.Time {
	if task.LastCompleted == nil {
		return now
	}

	last := *task.LastCompleted
	switch task.Frequency {
	case model.FrequencyDaily:
		return last.AddDate(0, 0, 1)
	case model.FrequencyWeekly:
		return last.AddDate(0, 0, 7)
	case model.FrequencyMonthly:
		return last.AddDate(0, 1, 0)
	case model.FrequencyQuarterly:
		return last.AddDate(0, 3, 0)
	}
	// Unknown cadence falls back to weekly, the form default.
	return last.AddDate(0, 0, 7)
}

// Overdue reports whether the task's next due time is at or before now.
func Overdue(task model.HouseTask, now time.Time) bool {
	return !NextDue(task, now).After(now)
}
