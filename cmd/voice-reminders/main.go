package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"voice-reminders/internal/app"
	"voice-reminders/internal/logging"
	"voice-reminders/internal/model"
	"voice-reminders/internal/notify"
	"voice-reminders/internal/speech"
	"voice-reminders/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to the configuration file")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	engine := speech.NewEngine(cfg.Speech, logger)
	scheduler := notify.NewLocalScheduler(st, engine, logger)
	service := app.NewService(st, scheduler, logger)

	// Re-arm reminders that were scheduled before the last shutdown.
	rearmed, err := service.RearmPending(context.Background())
	if err != nil {
		return err
	}

	checker := notify.NewDueChecker(
		st,
		scheduler,
		time.Duration(cfg.HouseCheckIntervalSec)*time.Second,
		logger,
	)
	if err := checker.Start(); err != nil {
		return err
	}

	logger.Info("voice reminders running",
		slog.String("db", cfg.DBPath),
		slog.Int("rearmed", rearmed),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	checker.Stop()
	scheduler.CancelAll()
	engine.Stop()
	return nil
}
