// Package speech defines the text-to-speech and speech-capture contracts
// and provides a synthesizer backed by an external command.
package speech

import "context"

// Synthesizer speaks messages aloud. Delivery is fire-and-forget: callers
// consume nothing beyond the error.
type Synthesizer interface {
	// Speak announces text at the given volume in [0, 1].
	Speak(ctx context.Context, text string, volume float64) error

	// Stop interrupts any in-flight utterance.
	Stop()
}

// Capture produces one final transcript string per recording session.
// Partial results are never surfaced.
type Capture interface {
	// Transcript blocks until the session yields its final transcript.
	Transcript(ctx context.Context) (string, error)
}
