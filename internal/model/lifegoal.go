package model

import "time"

// GoalCategory groups life goals on the memento mori view.
type GoalCategory string

const (
	CategoryPersonal      GoalCategory = "personal"
	CategoryProfessional  GoalCategory = "professional"
	CategoryHealth        GoalCategory = "health"
	CategoryRelationships GoalCategory = "relationships"
)

// GoalCategories lists all categories in display order.
var GoalCategories = []GoalCategory{
	CategoryPersonal,
	CategoryProfessional,
	CategoryHealth,
	CategoryRelationships,
}

// Valid reports whether c is one of the supported goal categories.
func (c GoalCategory) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryProfessional, CategoryHealth, CategoryRelationships:
		return true
	}
	return false
}

// LifeGoal is a long-term goal tracked on the memento mori view.
// Goals start incomplete and transition to completed exactly once.
type LifeGoal struct {
	ID          string       `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Category    GoalCategory `json:"category" db:"category"`
	DateCreated time.Time    `json:"date_created" db:"date_created"`
	Completed   bool         `json:"completed" db:"completed"`
}
