package model

import (
	"strconv"
	"strings"
	"time"
)

// titleLimit is the maximum length of a title derived from a message.
const titleLimit = 30

// Reminder is a scheduled announcement created from typed or transcribed text.
type Reminder struct {
	// ID is the opaque, time-based identifier assigned at creation.
	// It never changes once the reminder is saved.
	ID string `json:"id" db:"id"`

	// Title is the short display string, derived from Message when the
	// user does not supply one.
	Title string `json:"title" db:"title"`

	// Message is the full reminder text announced at delivery time.
	Message string `json:"message" db:"message"`

	// Datetime is the moment the reminder fires. Stored in UTC.
	Datetime time.Time `json:"datetime" db:"datetime"`

	// IsVoice marks reminders created through the speech-capture path.
	IsVoice bool `json:"is_voice" db:"is_voice"`

	// CreatedAt is when the reminder record was saved.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewReminderID returns the time-based identifier for a reminder created at t.
func NewReminderID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// DeriveTitle produces a display title from a reminder message: the first
// 30 characters, with a trailing ellipsis when the message is longer.
func DeriveTitle(message string) string {
	trimmed := strings.TrimSpace(message)
	runes := []rune(trimmed)
	if len(runes) <= titleLimit {
		return trimmed
	}
	return strings.TrimSpace(string(runes[:titleLimit])) + "..."
}
