// Package app orchestrates the reminder, house-task, and life-goal flows on
// top of the store, the notification scheduler, and the time-phrase parser.
// All collaborators are injected once at construction; there are no ambient
// singletons.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"voice-reminders/internal/model"
	"voice-reminders/internal/notify"
	"voice-reminders/internal/schedule"
	"voice-reminders/internal/speech"
	"voice-reminders/internal/store"
	"voice-reminders/internal/timeparse"
)

// Service coordinates the application's flows.
type Service struct {
	store  store.Store
	sched  notify.Scheduler
	logger *slog.Logger

	// clock is replaceable in tests.
	clock func() time.Time

	// defaultExpectancy applies until the user saves a life profile.
	defaultExpectancy float64
}

// NewService creates a Service with the given collaborators.
func NewService(st store.Store, sched notify.Scheduler, logger *slog.Logger) *Service {
	return &Service{
		store:             st,
		sched:             sched,
		logger:            logger,
		clock:             time.Now,
		defaultExpectancy: model.DefaultLifeExpectancy,
	}
}

// CreateReminderInput carries one reminder-creation request. The reminder
// time is resolved from the first source that applies: an explicit When
// from the form, a quick-time offset, or a time phrase in the message text.
type CreateReminderInput struct {
	// Title overrides the derived title when non-empty.
	Title string

	// Message is the reminder text. Required.
	Message string

	// When is the explicit date and time picked on the form, if any.
	When *time.Time

	// QuickMinutes is the quick-time offset in minutes, 0 when unused.
	QuickMinutes int

	// FromVoice marks the message as a speech transcript, which enables
	// day-keyword parsing and the default-to-now fallback.
	FromVoice bool
}

// CreateReminder validates, persists, and schedules a new reminder.
// Reminders are never created with a past timestamp.
func (s *Service) CreateReminder(ctx context.Context, in CreateReminderInput) (*model.Reminder, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("reminder message must not be empty")
	}

	now := s.clock()

	var at time.Time
	switch {
	case in.When != nil:
		at = *in.When
	case in.QuickMinutes > 0:
		at = schedule.QuickTime(now, in.QuickMinutes)
	case in.FromVoice:
		at = timeparse.Parse(in.Message, now, timeparse.ModeVoice).Time
	default:
		at = timeparse.Parse(in.Message, now, timeparse.ModeTyped).Time
	}

	if !at.After(now) {
		return nil, fmt.Errorf("reminder time must be in the future")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = model.DeriveTitle(in.Message)
	}

	r := model.Reminder{
		ID:        model.NewReminderID(now),
		Title:     title,
		Message:   in.Message,
		Datetime:  at,
		IsVoice:   in.FromVoice,
		CreatedAt: now,
	}

	if err := s.store.CreateReminder(ctx, r); err != nil {
		return nil, err
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Warn("reading settings for scheduling", slog.String("error", err.Error()))
		settings = model.DefaultSettings()
	}

	// Every reminder is announced aloud; IsVoice only records how it
	// was created.
	if err := s.sched.Schedule(notify.Request{
		ID:      r.ID,
		Title:   r.Title,
		Message: r.Message,
		At:      r.Datetime,
		Voice:   true,
		Vibrate: settings.Vibration,
	}); err != nil {
		s.logger.Warn("scheduling reminder notification",
			slog.String("id", r.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("reminder created",
		slog.String("id", r.ID),
		slog.Time("at", r.Datetime),
		slog.Bool("voice", r.IsVoice),
	)
	return &r, nil
}

// CaptureReminder records one speech session and creates a reminder from
// the final transcript, with day-keyword parsing enabled.
func (s *Service) CaptureReminder(ctx context.Context, capture speech.Capture) (*model.Reminder, error) {
	transcript, err := capture.Transcript(ctx)
	if err != nil {
		return nil, fmt.Errorf("capturing speech: %w", err)
	}
	return s.CreateReminder(ctx, CreateReminderInput{
		Message:   transcript,
		FromVoice: true,
	})
}

// DeleteReminder removes a reminder and cancels its pending notification.
func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	if err := s.store.DeleteReminder(ctx, id); err != nil {
		return err
	}
	s.sched.Cancel(id)
	return nil
}

// ReminderView pairs a reminder with its display labels.
type ReminderView struct {
	model.Reminder

	// Display is the formatted reminder time, e.g. "Today at 8:00 PM".
	Display string

	// Countdown is the remaining-time label, e.g. "5 minutes".
	Countdown string
}

// Overview is the classified reminder view backing the home screen.
type Overview struct {
	Upcoming []ReminderView
	PastDue  []ReminderView

	// Next is the soonest upcoming reminder, nil when none is scheduled.
	Next *ReminderView
}

// Overview classifies all stored reminders around the current time.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	reminders, err := s.store.GetReminders(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	classified := schedule.Classify(reminders, now)

	view := &Overview{
		Upcoming: make([]ReminderView, 0, len(classified.Upcoming)),
		PastDue:  make([]ReminderView, 0, len(classified.PastDue)),
	}
	for _, r := range classified.Upcoming {
		view.Upcoming = append(view.Upcoming, ReminderView{
			Reminder:  r,
			Display:   schedule.FormatDisplay(r.Datetime, now),
			Countdown: schedule.Remaining(r.Datetime, now),
		})
	}
	for _, r := range classified.PastDue {
		view.PastDue = append(view.PastDue, ReminderView{
			Reminder:  r,
			Display:   schedule.FormatDisplay(r.Datetime, now),
			Countdown: schedule.Remaining(r.Datetime, now),
		})
	}
	if len(view.Upcoming) > 0 {
		view.Next = &view.Upcoming[0]
	}
	return view, nil
}

// RearmPending re-schedules every stored reminder that is still upcoming.
// Called once at startup so reminders survive restarts.
func (s *Service) RearmPending(ctx context.Context) (int, error) {
	reminders, err := s.store.GetReminders(ctx)
	if err != nil {
		return 0, err
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		settings = model.DefaultSettings()
	}

	classified := schedule.Classify(reminders, s.clock())
	for _, r := range classified.Upcoming {
		if err := s.sched.Schedule(notify.Request{
			ID:      r.ID,
			Title:   r.Title,
			Message: r.Message,
			At:      r.Datetime,
			Voice:   true,
			Vibrate: settings.Vibration,
		}); err != nil {
			return 0, fmt.Errorf("re-arming reminder %s: %w", r.ID, err)
		}
	}

	s.logger.Info("pending reminders re-armed", slog.Int("count", len(classified.Upcoming)))
	return len(classified.Upcoming), nil
}

// TestNotification delivers an immediate spoken notification, used to
// verify the speech engine and volume settings.
func (s *Service) TestNotification(ctx context.Context, message string) {
	if strings.TrimSpace(message) == "" {
		message = "This is a test voice notification"
	}
	s.sched.Deliver(ctx, notify.Request{
		ID:      "test-notification",
		Title:   "Test Notification",
		Message: message,
		At:      s.clock(),
		Voice:   true,
		Vibrate: true,
	})
}
