package store

import (
	"context"
	"time"

	"voice-reminders/internal/model"
)

// GoalFilter controls filtering for life-goal queries.
type GoalFilter struct {
	Category  *model.GoalCategory // nil means all categories
	Completed *bool               // nil means both completed and open
}

// Store defines the persistence interface for reminders, house tasks,
// life goals, and the settings/life-profile singletons.
type Store interface {
	// === Reminders ===

	CreateReminder(ctx context.Context, r model.Reminder) error
	DeleteReminder(ctx context.Context, id string) error
	GetReminders(ctx context.Context) ([]model.Reminder, error)
	GetReminderByID(ctx context.Context, id string) (*model.Reminder, error)

	// === House tasks ===

	CreateHouseTask(ctx context.Context, t model.HouseTask) error
	GetHouseTasks(ctx context.Context) ([]model.HouseTask, error)
	GetHouseTaskByID(ctx context.Context, id string) (*model.HouseTask, error)
	CompleteHouseTask(ctx context.Context, id string, completedAt time.Time) error

	// === Life goals ===

	CreateLifeGoal(ctx context.Context, g model.LifeGoal) error
	GetLifeGoals(ctx context.Context, filter GoalFilter) ([]model.LifeGoal, error)
	CompleteLifeGoal(ctx context.Context, id string) error

	// === Settings and life profile (singletons) ===

	GetSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, s model.Settings) error
	GetLifeProfile(ctx context.Context) (model.LifeProfile, error)
	SaveLifeProfile(ctx context.Context, p model.LifeProfile) error
}
