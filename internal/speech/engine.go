package speech

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"voice-reminders/internal/model"
)

// Executor runs the external synthesis command.
type Executor interface {
	Run(ctx context.Context, name string, args []string) error
}

// execRunner is the default Executor backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Engine synthesizes speech by invoking an external command such as espeak
// or say. Configured arguments may carry the placeholders {volume} (percent,
// 0-100), {rate}, and {pitch}; the message text is substituted for {text},
// or appended as the final argument when no {text} placeholder is present.
type Engine struct {
	Config   model.SpeechConfig
	Executor Executor
	Logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewEngine creates an Engine that invokes the configured command.
func NewEngine(cfg model.SpeechConfig, logger *slog.Logger) *Engine {
	return &Engine{
		Config:   cfg,
		Executor: execRunner{},
		Logger:   logger,
	}
}

// Speak announces text at the given volume, stopping any utterance already
// in flight. The volume is clamped to [0, 1] before substitution.
func (e *Engine) Speak(ctx context.Context, text string, volume float64) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if e.Config.Command == "" {
		return fmt.Errorf("speech engine: no command configured")
	}

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	e.Stop()

	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	args := e.buildArgs(text, volume)
	e.logger().Debug("speaking message",
		slog.String("command", e.Config.Command),
		slog.Int("chars", len(text)),
	)

	if err := e.Executor.Run(ctx, e.Config.Command, args); err != nil {
		return fmt.Errorf("speech engine: running %s: %w", e.Config.Command, err)
	}
	return nil
}

// Stop cancels the in-flight utterance, if any.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// buildArgs expands the configured argument template for one utterance.
func (e *Engine) buildArgs(text string, volume float64) []string {
	replacer := strings.NewReplacer(
		"{volume}", strconv.Itoa(int(math.Round(volume*100))),
		"{rate}", strconv.FormatFloat(e.Config.Rate, 'g', -1, 64),
		"{pitch}", strconv.FormatFloat(e.Config.Pitch, 'g', -1, 64),
	)

	args := make([]string, 0, len(e.Config.Args)+1)
	hasText := false
	for _, a := range e.Config.Args {
		if strings.Contains(a, "{text}") {
			hasText = true
			a = strings.ReplaceAll(a, "{text}", text)
		}
		args = append(args, replacer.Replace(a))
	}
	if !hasText {
		args = append(args, text)
	}
	return args
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
