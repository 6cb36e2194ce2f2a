package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"voice-reminders/internal/model"
)

// GetSettings returns the stored user preferences, or the defaults when
// nothing has been saved yet.
func (s *SQLiteStore) GetSettings(ctx context.Context) (model.Settings, error) {
	var (
		settings     model.Settings
		voiceInt     int
		vibrationInt int
	)

	row := s.db.QueryRowxContext(ctx,
		"SELECT voice_notifications, vibration, volume FROM settings WHERE id = 1")
	err := row.Scan(&voiceInt, &vibrationInt, &settings.Volume)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	settings.VoiceNotifications = voiceInt != 0
	settings.Vibration = vibrationInt != 0
	return settings, nil
}

// SaveSettings overwrites the preference fields wholesale. The life profile
// columns of the singleton row are left untouched.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, voice_notifications, vibration, volume)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			voice_notifications = excluded.voice_notifications,
			vibration = excluded.vibration,
			volume = excluded.volume`,
		boolToInt(settings.VoiceNotifications), boolToInt(settings.Vibration), settings.Volume,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// GetLifeProfile returns the stored life profile. An unset birth date comes
// back as the zero time; the expectancy defaults when nothing is saved.
func (s *SQLiteStore) GetLifeProfile(ctx context.Context) (model.LifeProfile, error) {
	var (
		profile   model.LifeProfile
		birthDate *time.Time
	)

	row := s.db.QueryRowxContext(ctx,
		"SELECT birth_date, life_expectancy FROM settings WHERE id = 1")
	err := row.Scan(&birthDate, &profile.LifeExpectancy)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LifeProfile{LifeExpectancy: model.DefaultLifeExpectancy}, nil
	}
	if err != nil {
		return model.LifeProfile{}, fmt.Errorf("reading life profile: %w", err)
	}

	if birthDate != nil {
		profile.BirthDate = *birthDate
	}
	return profile, nil
}

// SaveLifeProfile overwrites the life profile columns. The preference
// columns of the singleton row are left untouched.
func (s *SQLiteStore) SaveLifeProfile(ctx context.Context, p model.LifeProfile) error {
	var birthDate interface{}
	if !p.BirthDate.IsZero() {
		birthDate = p.BirthDate.UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, birth_date, life_expectancy)
		 VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			birth_date = excluded.birth_date,
			life_expectancy = excluded.life_expectancy`,
		birthDate, p.LifeExpectancy,
	)
	if err != nil {
		return fmt.Errorf("saving life profile: %w", err)
	}
	return nil
}
