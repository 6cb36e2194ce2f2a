// Package notify delivers reminder announcements: one-shot scheduling of
// individual reminders and a periodic due check for house tasks.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voice-reminders/internal/model"
	"voice-reminders/internal/speech"
	"voice-reminders/internal/store"
)

// Request describes a single notification handed to the scheduler.
type Request struct {
	// ID identifies the notification for later cancellation.
	ID string

	// Title is the short display string.
	Title string

	// Message is the text announced at delivery time.
	Message string

	// At is when the notification should fire.
	At time.Time

	// Voice marks the notification for spoken delivery.
	Voice bool

	// Vibrate is passed through to the delivery layer.
	Vibrate bool
}

// Scheduler schedules and cancels notifications. Delivery timing and retry
// are entirely the scheduler's responsibility.
type Scheduler interface {
	// Schedule arms a notification to fire at req.At. Scheduling the
	// same ID again replaces the earlier notification.
	Schedule(req Request) error

	// Deliver fires a notification immediately, bypassing the timer.
	Deliver(ctx context.Context, req Request)

	// Cancel drops the pending notification with the given ID.
	Cancel(id string)

	// CancelAll drops every pending notification.
	CancelAll()
}

// LocalScheduler delivers notifications in-process: one timer per reminder,
// announced through a speech synthesizer. Voice and volume preferences are
// read from the store at delivery time, so settings changes apply to
// already-scheduled reminders.
type LocalScheduler struct {
	store  store.Store
	tts    speech.Synthesizer
	logger *slog.Logger
	clock  func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewLocalScheduler creates a scheduler announcing through tts.
func NewLocalScheduler(st store.Store, tts speech.Synthesizer, logger *slog.Logger) *LocalScheduler {
	return &LocalScheduler{
		store:  st,
		tts:    tts,
		logger: logger,
		clock:  time.Now,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms a timer for the notification. A request whose time has
// already passed fires immediately.
func (s *LocalScheduler) Schedule(req Request) error {
	delay := req.At.Sub(s.clock())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	if old, ok := s.timers[req.ID]; ok {
		old.Stop()
	}
	s.timers[req.ID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, req.ID)
		s.mu.Unlock()
		s.Deliver(context.Background(), req)
	})
	s.mu.Unlock()

	s.logger.Info("notification scheduled",
		slog.String("id", req.ID),
		slog.Time("at", req.At),
	)
	return nil
}

// Deliver announces the notification immediately. Spoken delivery honors
// the stored voice-notification toggle and volume, and interrupts any
// utterance already playing.
func (s *LocalScheduler) Deliver(ctx context.Context, req Request) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Error("reading settings for delivery", slog.String("error", err.Error()))
		settings = model.DefaultSettings()
	}

	s.logger.Info("notification due",
		slog.String("id", req.ID),
		slog.String("title", req.Title),
		slog.Bool("voice", req.Voice),
		slog.Bool("vibrate", req.Vibrate && settings.Vibration),
	)

	if !req.Voice || !settings.VoiceNotifications {
		return
	}

	s.tts.Stop()
	if err := s.tts.Speak(ctx, req.Message, settings.Volume); err != nil {
		s.logger.Warn("voice delivery failed",
			slog.String("id", req.ID),
			slog.String("error", err.Error()),
		)
	}
}

// Cancel drops the pending notification with the given ID, if any.
func (s *LocalScheduler) Cancel(id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.logger.Info("notification canceled", slog.String("id", id))
}

// CancelAll drops every pending notification.
func (s *LocalScheduler) CancelAll() {
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.logger.Info("all notifications canceled")
}

// Pending returns the number of armed notifications.
func (s *LocalScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
