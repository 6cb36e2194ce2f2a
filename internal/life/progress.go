// Package life computes progress toward an assumed life expectancy for the
// memento mori view.
package life

import (
	"fmt"
	"math"
	"time"
)

// hoursPerYear uses the 365.25-day astronomical year.
const hoursPerYear = 24 * 365.25

// Progress summarizes how much of an assumed lifespan has elapsed.
type Progress struct {
	// AgeYears is the whole number of years lived.
	AgeYears int

	// RemainingYears is the whole number of years left, never negative.
	RemainingYears int

	// LivedPercent is the share of the lifespan already lived, rendered
	// with one decimal place and capped at 100.0.
	LivedPercent string

	// RemainingPercent is the share left, rendered with one decimal
	// place and floored at 0.0.
	RemainingPercent string
}

// Calculate returns the life progress at now for a person born at birthDate
// with the given life expectancy in years. ok is false when the birth date
// is unset or the expectancy is not positive; callers must not render a
// progress view in that case.
func Calculate(birthDate time.Time, expectancyYears float64, now time.Time) (Progress, bool) {
	if birthDate.IsZero() || expectancyYears <= 0 {
		return Progress{}, false
	}

	age := now.Sub(birthDate).Hours() / hoursPerYear
	lived := age / expectancyYears * 100

	return Progress{
		AgeYears:         int(math.Floor(age)),
		RemainingYears:   int(math.Max(0, math.Floor(expectancyYears-age))),
		LivedPercent:     fmt.Sprintf("%.1f", math.Min(100, lived)),
		RemainingPercent: fmt.Sprintf("%.1f", math.Max(0, 100-lived)),
	}, true
}
