package model

import "time"

// Frequency is the recurrence cadence of a house task.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// Valid reports whether f is one of the supported cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// HouseTask is a recurring household chore tracked by area and cadence.
// Completion only stamps LastCompleted; tasks are never auto-deleted.
type HouseTask struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Area      string    `json:"area" db:"area"`
	Frequency Frequency `json:"frequency" db:"frequency"`

	// LastCompleted is nil until the task is completed for the first time.
	LastCompleted *time.Time `json:"last_completed,omitempty" db:"last_completed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
