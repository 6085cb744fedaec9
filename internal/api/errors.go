package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the response taxonomy. Callers branch with errors.Is;
// the concrete *APIError (when present) carries status code and server message.
var (
	// ErrBackendUnreachable wraps transport failures: the request never got an
	// HTTP response. Distinguished from every HTTP-level error so the UI can
	// show a connectivity banner with a retry action.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrUnauthorized is returned for 401 responses. The stored token has
	// already been cleared by the time the caller sees this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for 403 responses. The token is left alone.
	ErrForbidden = errors.New("access denied")

	// ErrAccountLocked is returned for 423 responses.
	ErrAccountLocked = errors.New("account locked")

	// ErrValidation is returned for 422 and 400 responses from mutating
	// endpoints. The raw server text is preserved on the APIError but display
	// layers show "check required fields" wording instead.
	ErrValidation = errors.New("validation failed")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// Unwrap exposes the taxonomy sentinel, if any, to errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}

// statusError builds the typed error for a non-2xx status.
func statusError(status int, message string) *APIError {
	e := &APIError{StatusCode: status, Message: message}
	switch status {
	case 401:
		e.kind = ErrUnauthorized
	case 403:
		e.kind = ErrForbidden
	case 423:
		e.kind = ErrAccountLocked
	case 400, 422:
		e.kind = ErrValidation
	}
	return e
}
