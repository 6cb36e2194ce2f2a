package store

import (
	"context"
	"fmt"
	"strings"

	"voice-reminders/internal/model"
)

// CreateReminder inserts a new reminder. The message must be non-empty and
// the record must already carry its time-based identifier. A missing title
// is derived from the message.
func (s *SQLiteStore) CreateReminder(ctx context.Context, r model.Reminder) error {
	if r.ID == "" {
		return fmt.Errorf("reminder id must not be empty")
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("reminder message must not be empty")
	}
	if r.Title == "" {
		r.Title = model.DeriveTitle(r.Message)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (id, title, message, datetime, is_voice, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Message, r.Datetime.UTC(), boolToInt(r.IsVoice), r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating reminder %s: %w", r.ID, err)
	}
	return nil
}

// DeleteReminder removes a reminder by ID.
func (s *SQLiteStore) DeleteReminder(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reminder %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reminder %s not found", id)
	}
	return nil
}

// GetReminders returns all reminders ordered ascending by datetime,
// matching how the list is displayed.
func (s *SQLiteStore) GetReminders(ctx context.Context) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, title, message, datetime, is_voice, created_at FROM reminders ORDER BY datetime")
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// GetReminderByID retrieves a single reminder by its ID.
func (s *SQLiteStore) GetReminderByID(ctx context.Context, id string) (*model.Reminder, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, title, message, datetime, is_voice, created_at FROM reminders WHERE id = ?", id)

	r, err := scanReminder(row)
	if err != nil {
		return nil, fmt.Errorf("getting reminder %s: %w", id, err)
	}
	return &r, nil
}

// scanReminder scans a reminder row.
func scanReminder(row interface{ Scan(dest ...interface{}) error }) (model.Reminder, error) {
	var (
		r        model.Reminder
		voiceInt int
	)

	err := row.Scan(&r.ID, &r.Title, &r.Message, &r.Datetime, &voiceInt, &r.CreatedAt)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("scanning reminder row: %w", err)
	}

	r.IsVoice = voiceInt != 0
	return r, nil
}
