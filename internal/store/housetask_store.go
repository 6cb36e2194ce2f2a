package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-reminders/internal/model"
)

// CreateHouseTask inserts a new house task. Title and area are required;
// an empty frequency defaults to weekly. If the task has no ID, a new UUID
// is generated.
func (s *SQLiteStore) CreateHouseTask(ctx context.Context, t model.HouseTask) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("house task title must not be empty")
	}
	if strings.TrimSpace(t.Area) == "" {
		return fmt.Errorf("house task area must not be empty")
	}
	if t.Frequency == "" {
		t.Frequency = model.FrequencyWeekly
	}
	if !t.Frequency.Valid() {
		return fmt.Errorf("invalid house task frequency %q", t.Frequency)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	var lastCompleted interface{}
	if t.LastCompleted != nil {
		lastCompleted = t.LastCompleted.UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO house_tasks (id, title, area, frequency, last_completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Area, string(t.Frequency), lastCompleted, t.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating house task %s: %w", t.ID, err)
	}
	return nil
}

// GetHouseTasks returns all house tasks in creation order.
func (s *SQLiteStore) GetHouseTasks(ctx context.Context) ([]model.HouseTask, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, title, area, frequency, last_completed, created_at FROM house_tasks ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("querying house tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.HouseTask
	for rows.Next() {
		t, err := scanHouseTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetHouseTaskByID retrieves a single house task by its ID.
func (s *SQLiteStore) GetHouseTaskByID(ctx context.Context, id string) (*model.HouseTask, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, title, area, frequency, last_completed, created_at FROM house_tasks WHERE id = ?", id)

	t, err := scanHouseTask(row)
	if err != nil {
		return nil, fmt.Errorf("getting house task %s: %w", id, err)
	}
	return &t, nil
}

// CompleteHouseTask stamps the task's last_completed time. Completion never
// touches any other field and never removes the task.
func (s *SQLiteStore) CompleteHouseTask(ctx context.Context, id string, completedAt time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE house_tasks SET last_completed = ? WHERE id = ?",
		completedAt.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("completing house task %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("house task %s not found", id)
	}
	return nil
}

// scanHouseTask scans a house task row.
func scanHouseTask(row interface{ Scan(dest ...interface{}) error }) (model.HouseTask, error) {
	var (
		t             model.HouseTask
		frequency     string
		lastCompleted *time.Time
	)

	err := row.Scan(&t.ID, &t.Title, &t.Area, &frequency, &lastCompleted, &t.CreatedAt)
	if err != nil {
		return model.HouseTask{}, fmt.Errorf("scanning house task row: %w", err)
	}

	t.Frequency = model.Frequency(frequency)
	t.LastCompleted = lastCompleted
	return t, nil
}
