package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached by Handler. Errors that already carry a go-errors
// category, such as the compiler's OUTPUT_WRITE_FAILED, keep their own code.
const (
	CodeInvalidRequest = "COMMAND_INVALID_REQUEST"
	CodeInterrupted    = "COMMAND_INTERRUPTED"
	CodeDeadline       = "COMMAND_DEADLINE_EXCEEDED"
	CodeFailed         = "COMMAND_FAILED"
)

// TextCode returns the go-errors text code carried by err, or "".
func TextCode(err error) string {
	var coded *goerrors.Error
	if errors.As(err, &coded) {
		return coded.TextCode
	}
	return ""
}

func rejectMessage(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command rejected").
		WithTextCode(CodeInvalidRequest)
}

// classify maps the error of a run to its outcome. A signal or a parent
// cancellation counts as an interruption, not a failure.
func classify(err error) (Outcome, error) {
	switch {
	case err == nil:
		return OutcomeCompleted, nil
	case errors.Is(err, context.Canceled):
		return OutcomeInterrupted, categorise(err, "command interrupted", CodeInterrupted)
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeInterrupted, categorise(err, "command deadline exceeded", CodeDeadline)
	default:
		return OutcomeFailed, categorise(err, "command failed", CodeFailed)
	}
}

func categorise(err error, message, code string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}
