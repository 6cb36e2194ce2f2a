package app

import (
	"context"

	"voice-reminders/internal/model"
)

// Settings returns the current user preferences.
func (s *Service) Settings(ctx context.Context) (model.Settings, error) {
	return s.store.GetSettings(ctx)
}

// UpdateSettings merges the patch into the stored preferences and saves the
// result wholesale. Nil patch fields leave stored values untouched.
func (s *Service) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	current, err := s.store.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	merged := patch.Apply(current)
	if err := s.store.SaveSettings(ctx, merged); err != nil {
		return model.Settings{}, err
	}
	return merged, nil
}
