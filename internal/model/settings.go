package model

import "time"

// DefaultLifeExpectancy is the assumed life expectancy, in years, until the
// user sets their own.
const DefaultLifeExpectancy = 80

// Settings holds the user's notification preferences. A single record is
// kept per installation and overwritten wholesale on save.
type Settings struct {
	// VoiceNotifications controls whether reminders are spoken aloud.
	VoiceNotifications bool `json:"voice_notifications" db:"voice_notifications"`

	// Vibration controls the vibrate flag passed to the notification
	// scheduler.
	Vibration bool `json:"vibration" db:"vibration"`

	// Volume is the announcement volume in [0, 1].
	Volume float64 `json:"volume" db:"volume"`
}

// DefaultSettings returns the preferences applied before the user saves
// anything.
func DefaultSettings() Settings {
	return Settings{
		VoiceNotifications: true,
		Vibration:          true,
		Volume:             0.7,
	}
}

// SettingsPatch is a partial settings update. Nil fields leave the stored
// value untouched.
type SettingsPatch struct {
	VoiceNotifications *bool
	Vibration          *bool
	Volume             *float64
}

// Apply merges the patch into s and returns the result. Volume is clamped
// to [0, 1].
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.VoiceNotifications != nil {
		s.VoiceNotifications = *p.VoiceNotifications
	}
	if p.Vibration != nil {
		s.Vibration = *p.Vibration
	}
	if p.Volume != nil {
		v := *p.Volume
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		s.Volume = v
	}
	return s
}

// LifeProfile holds the inputs for the life-progress view. BirthDate stays
// zero until the user sets it; callers must not render progress in that case.
type LifeProfile struct {
	BirthDate      time.Time `json:"birth_date" db:"birth_date"`
	LifeExpectancy float64   `json:"life_expectancy" db:"life_expectancy"`
}
