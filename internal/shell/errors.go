package shell

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/tuanvumaihuynh/pos/internal/apperr"
	"github.com/tuanvumaihuynh/pos/pkg/validator"
	"github.com/tuanvumaihuynh/pos/pkg/zerror"
)

// describeError turns a command error into the line shown to the operator.
func describeError(err error) string {
	var usage usageError
	if errors.As(err, &usage) {
		return usage.Error()
	}

	var zErr zerror.ZError
	if !errors.As(err, &zErr) {
		return "error: " + err.Error()
	}

	msg := zErr.Msg()
	if !zErr.Status().IsUserError() {
		msg = "error: " + msg
	}

	parent := zErr.Parent()
	switch {
	case parent == nil:
		return msg
	case errors.Is(zErr, apperr.ValidationErr) && validator.IsValidationError(parent):
		return msg + ": " + strings.Join(validator.ValidationErrorMessages(parent), "; ")
	default:
		return msg + ": " + parent.Error()
	}
}

// errorLevel logs operator mistakes quietly and everything else as a warning.
func errorLevel(err error) slog.Level {
	var usage usageError
	if errors.As(err, &usage) {
		return slog.LevelDebug
	}

	var zErr zerror.ZError
	if errors.As(err, &zErr) && zErr.Status().IsUserError() {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
