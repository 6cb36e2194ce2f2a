package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"voice-reminders/internal/schedule"
	"voice-reminders/internal/store"
)

// DueChecker periodically sweeps house tasks and announces the ones whose
// cadence has lapsed.
type DueChecker struct {
	store    store.Store
	sched    Scheduler
	logger   *slog.Logger
	cron     *cron.Cron
	interval time.Duration
}

// NewDueChecker creates a checker sweeping at the given interval.
func NewDueChecker(st store.Store, sched Scheduler, interval time.Duration, logger *slog.Logger) *DueChecker {
	return &DueChecker{
		store:    st,
		sched:    sched,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start begins the periodic sweep.
func (d *DueChecker) Start() error {
	spec := fmt.Sprintf("@every %s", d.interval)

	if _, err := d.cron.AddFunc(spec, d.check); err != nil {
		return fmt.Errorf("adding due check job: %w", err)
	}

	d.cron.Start()
	d.logger.Info("house task due checker started", slog.Duration("interval", d.interval))
	return nil
}

// Stop halts the sweep and waits for a running check to finish.
func (d *DueChecker) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	d.logger.Info("house task due checker stopped")
}

// check announces every overdue house task once per sweep.
func (d *DueChecker) check() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tasks, err := d.store.GetHouseTasks(ctx)
	if err != nil {
		d.logger.Error("loading house tasks for due check", slog.String("error", err.Error()))
		return
	}

	now := time.Now()
	overdue := 0
	for _, t := range tasks {
		if !schedule.Overdue(t, now) {
			continue
		}
		overdue++
		d.sched.Deliver(ctx, Request{
			ID:      "house-task-" + t.ID,
			Title:   "House task due",
			Message: fmt.Sprintf("%s in the %s is due", t.Title, t.Area),
			At:      now,
			Voice:   true,
			Vibrate: true,
		})
	}

	d.logger.Debug("house task due check complete",
		slog.Int("tasks", len(tasks)),
		slog.Int("overdue", overdue),
	)
}
