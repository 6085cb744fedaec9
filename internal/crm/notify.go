package crm

import (
	"errors"

	"leadcrm/internal/api"
)

// Level classifies a transient notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notifier receives transient user-facing notifications. The TUI shows them
// as a status banner; CLI commands print them. Injected so nothing here is a
// process-global.
type Notifier interface {
	Notify(level Level, message string)
}

// NopNotifier drops everything.
type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}

// ErrorMessage translates an operation failure into display wording.
// Validation failures get generic "check required fields" wording instead of
// raw server text; everything else surfaces the server message verbatim.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrValidation):
		return "Please check the required fields and try again."
	case errors.Is(err, api.ErrBackendUnreachable):
		return "Cannot reach the server. Check your connection and retry."
	case errors.Is(err, api.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, api.ErrForbidden):
		return "You do not have permission to do that."
	case errors.Is(err, api.ErrAccountLocked):
		return "Account locked. Try again later."
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// notifyErr raises the standard error notification for a failed operation.
func (s *Store) notifyErr(err error) {
	s.notify.Notify(LevelError, ErrorMessage(err))
}
