package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voice-reminders/internal/life"
	"voice-reminders/internal/model"
	"voice-reminders/internal/store"
)

// AddLifeGoal persists a new life goal. Goals always start incomplete.
func (s *Service) AddLifeGoal(ctx context.Context, g model.LifeGoal) (*model.LifeGoal, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.DateCreated.IsZero() {
		g.DateCreated = s.clock()
	}
	g.Completed = false

	if err := s.store.CreateLifeGoal(ctx, g); err != nil {
		return nil, err
	}
	return &g, nil
}

// LifeGoals returns goals matching the filter, oldest first.
func (s *Service) LifeGoals(ctx context.Context, filter store.GoalFilter) ([]model.LifeGoal, error) {
	return s.store.GetLifeGoals(ctx, filter)
}

// GoalsByCategory groups all goals by category for the memento mori view.
func (s *Service) GoalsByCategory(ctx context.Context) (map[model.GoalCategory][]model.LifeGoal, error) {
	goals, err := s.store.GetLifeGoals(ctx, store.GoalFilter{})
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.GoalCategory][]model.LifeGoal, len(model.GoalCategories))
	for _, g := range goals {
		grouped[g.Category] = append(grouped[g.Category], g)
	}
	return grouped, nil
}

// CompleteLifeGoal marks a goal completed. The transition is one-way.
func (s *Service) CompleteLifeGoal(ctx context.Context, id string) error {
	return s.store.CompleteLifeGoal(ctx, id)
}

// SetLifeProfile saves the birth date and life expectancy backing the
// life-progress view. A non-positive expectancy falls back to the default.
func (s *Service) SetLifeProfile(ctx context.Context, birthDate time.Time, expectancyYears float64) error {
	if expectancyYears <= 0 {
		expectancyYears = s.defaultExpectancy
	}
	return s.store.SaveLifeProfile(ctx, model.LifeProfile{
		BirthDate:      birthDate,
		LifeExpectancy: expectancyYears,
	})
}

// LifeProgress computes the life-progress view from the stored profile.
// ok is false when no birth date has been set.
func (s *Service) LifeProgress(ctx context.Context) (life.Progress, bool, error) {
	profile, err := s.store.GetLifeProfile(ctx)
	if err != nil {
		return life.Progress{}, false, err
	}

	expectancy := profile.LifeExpectancy
	if expectancy <= 0 {
		expectancy = s.defaultExpectancy
	}

	progress, ok := life.Calculate(profile.BirthDate, expectancy, s.clock())
	return progress, ok, nil
}
