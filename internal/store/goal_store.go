package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voice-reminders/internal/model"
)

// CreateLifeGoal inserts a new life goal. The title is required; an empty
// category defaults to personal. Goals always start incomplete. If the goal
// has no ID, a new UUID is generated.
func (s *SQLiteStore) CreateLifeGoal(ctx context.Context, g model.LifeGoal) error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("life goal title must not be empty")
	}
	if g.Category == "" {
		g.Category = model.CategoryPersonal
	}
	if !g.Category.Valid() {
		return fmt.Errorf("invalid life goal category %q", g.Category)
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO life_goals (id, title, description, category, date_created, completed)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		g.ID, g.Title, g.Description, string(g.Category), g.DateCreated.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating life goal %s: %w", g.ID, err)
	}
	return nil
}

// GetLifeGoals returns life goals matching the filter, oldest first.
func (s *SQLiteStore) GetLifeGoals(ctx context.Context, filter GoalFilter) ([]model.LifeGoal, error) {
	var conditions []string
	var args []interface{}

	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolToInt(*filter.Completed))
	}

	query := "SELECT id, title, description, category, date_created, completed FROM life_goals"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date_created"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying life goals: %w", err)
	}
	defer rows.Close()

	var goals []model.LifeGoal
	for rows.Next() {
		g, err := scanLifeGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// CompleteLifeGoal marks a goal as completed. The transition is one-way:
// there is no way to reopen a completed goal.
func (s *SQLiteStore) CompleteLifeGoal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE life_goals SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("completing life goal %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("life goal %s not found", id)
	}
	return nil
}

// scanLifeGoal scans a life goal row.
func scanLifeGoal(row interface{ Scan(dest ...interface{}) error }) (model.LifeGoal, error) {
	var (
		g            model.LifeGoal
		category     string
		completedInt int
	)

	err := row.Scan(&g.ID, &g.Title, &g.Description, &category, &g.DateCreated, &completedInt)
	if err != nil {
		return model.LifeGoal{}, fmt.Errorf("scanning life goal row: %w", err)
	}

	g.Category = model.GoalCategory(category)
	g.Completed = completedInt != 0
	return g, nil
}
