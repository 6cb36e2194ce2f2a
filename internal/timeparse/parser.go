// Package timeparse resolves free-text time phrases ("at 8pm", "tomorrow",
// "in 15 minutes") into concrete timestamps. Parsing is total: input with no
// recognizable pattern degrades to a defined default instead of failing.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mode selects which input path's patterns the parser recognizes.
type Mode int

const (
	// ModeVoice handles full transcripts: a clock time anywhere in the
	// text plus day keywords (today, tomorrow, weekday names). When
	// nothing matches, the result defaults to the current time.
	ModeVoice Mode = iota

	// ModeTyped handles inline hints in typed text. Only "at <time>" and
	// "in <N> minute(s)" are recognized; otherwise the time is left
	// unchanged.
	ModeTyped
)

// Result is the outcome of parsing a time phrase.
type Result struct {
	// Time is the resolved timestamp. It is always well formed.
	Time time.Time

	// Matched reports whether any recognizable pattern was found.
	Matched bool
}

var (
	clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{1,2}))?(?:\s*(am|pm))?`)
	dayPattern   = regexp.MustCompile(`(?i)\b(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	atPattern    = regexp.MustCompile(`(?i)\bat\s+(\d+)(?::(\d+))?\s*(am|pm)?`)
	inPattern    = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+minutes?`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse resolves a free-text time phrase against now using the given mode.
// It never fails.
func Parse(input string, now time.Time, mode Mode) Result {
	if mode == ModeTyped {
		return parseTyped(input, now)
	}
	return parseVoice(input, now)
}

// parseVoice scans the whole transcript for a clock time and a day keyword.
// A missing clock time inherits now's hour and minute; a missing day keyword
// keeps now's date. Seconds are zeroed on any match.
func parseVoice(input string, now time.Time) Result {
	hour, minute := now.Hour(), now.Minute()

	timeMatch := clockPattern.FindStringSubmatch(input)
	if timeMatch != nil {
		hour, _ = strconv.Atoi(timeMatch[1])
		minute = 0
		if timeMatch[2] != "" {
			minute, _ = strconv.Atoi(timeMatch[2])
		}
		hour = adjustMeridiem(hour, timeMatch[3])
	}

	date := now
	dayMatch := dayPattern.FindStringSubmatch(input)
	if dayMatch != nil {
		switch day := strings.ToLower(dayMatch[1]); day {
		case "today":
			// date stays on now
		case "tomorrow":
			date = now.AddDate(0, 0, 1)
		default:
			target := weekdays[day]
			offset := (int(target) + 7 - int(now.Weekday())) % 7
			if offset == 0 {
				// The named day is today: schedule for next week
				// rather than risk a time already in the past.
				offset = 7
			}
			date = now.AddDate(0, 0, offset)
		}
	}

	if timeMatch == nil && dayMatch == nil {
		return Result{Time: now}
	}

	return Result{
		Time:    time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location()),
		Matched: true,
	}
}

// parseTyped recognizes exactly two inline patterns: "at <time>" sets the
// clock time on today's date, "in <N> minutes" offsets from now.
func parseTyped(input string, now time.Time) Result {
	if m := atPattern.FindStringSubmatch(input); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		hour = adjustMeridiem(hour, m[3])
		return Result{
			Time:    time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()),
			Matched: true,
		}
	}

	if m := inPattern.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Result{Time: now.Add(time.Duration(n) * time.Minute), Matched: true}
	}

	return Result{Time: now}
}

// adjustMeridiem applies the 12-hour clock rule: "pm" adds 12 to hours
// before noon, "12am" wraps to hour 0. No marker leaves the hour verbatim.
func adjustMeridiem(hour int, marker string) int {
	switch strings.ToLower(marker) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}
