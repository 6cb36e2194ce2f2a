package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		want   string
	}{
		{"five minutes", 5 * time.Minute, "5 minutes"},
		{"one minute", time.Minute, "1 minute"},
		{"under a minute", 59 * time.Second, "Less than a minute"},
		{"two hours", 2 * time.Hour, "2 hours"},
		{"one hour", 90 * time.Minute, "1 hour"},
		{"three days", 72 * time.Hour, "3 days"},
		{"one day", 25 * time.Hour, "1 day"},
		{"zero", 0, "Now"},
		{"elapsed", -time.Minute, "Now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(now.Add(tt.offset), now))
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	evening := time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today at 8:00 PM", FormatDisplay(evening, now))
	assert.Equal(t, "Tomorrow at 8:00 PM", FormatDisplay(evening.AddDate(0, 0, 1), now))
	assert.Equal(t, "Mar 20, 2025 at 8:00 AM",
		FormatDisplay(time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC), now))
}

func TestQuickTime(t *testing.T) {
	assert.Equal(t, now.Add(30*time.Minute), QuickTime(now, 30))
	assert.Contains(t, QuickTimeOptions, 5)
	assert.Contains(t, QuickTimeOptions, 60)
}
