package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// Outcome classifies a finished command run.
type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeFailed      Outcome = "failed"
	OutcomeInterrupted Outcome = "interrupted"
)

// RunInfo describes one command run.
type RunInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Elapsed   time.Duration
	Outcome   Outcome
	Err       error
	// Logger already carries Fields.
	Logger interfaces.Logger
}

// Telemetry receives every run that passed validation.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info RunInfo)

// LogTelemetry logs each run as command.<outcome> with its elapsed time.
// Failed and interrupted runs also carry the error and its text code.
func LogTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(_ context.Context, _ T, info RunInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{"elapsed", info.Elapsed.Round(time.Millisecond).String()}
		if info.Outcome == OutcomeCompleted {
			entry.Info("command.completed", args...)
			return
		}
		args = append(args, "error", info.Err)
		if code := TextCode(info.Err); code != "" {
			args = append(args, "error_code", code)
		}
		entry.Error("command."+string(info.Outcome), args...)
	}
}
