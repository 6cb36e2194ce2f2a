package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voice-reminders/internal/model"
	"voice-reminders/internal/schedule"
)

// HouseTaskView pairs a house task with its derived due state.
type HouseTaskView struct {
	model.HouseTask

	// NextDue is when the task should next be done.
	NextDue time.Time

	// Overdue reports whether NextDue has passed.
	Overdue bool
}

// CreateHouseTask persists a new house task. Validation (required title and
// area, known frequency) happens in the store.
func (s *Service) CreateHouseTask(ctx context.Context, t model.HouseTask) (*model.HouseTask, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.clock()
	}
	t.LastCompleted = nil

	if err := s.store.CreateHouseTask(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// HouseTasks returns all house tasks with their due state at the current time.
func (s *Service) HouseTasks(ctx context.Context) ([]HouseTaskView, error) {
	tasks, err := s.store.GetHouseTasks(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	views := make([]HouseTaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, HouseTaskView{
			HouseTask: t,
			NextDue:   schedule.NextDue(t, now),
			Overdue:   schedule.Overdue(t, now),
		})
	}
	return views, nil
}

// CompleteHouseTask stamps the task as done now.
func (s *Service) CompleteHouseTask(ctx context.Context, id string) error {
	return s.store.CompleteHouseTask(ctx, id, s.clock())
}
