// Package auth holds the client-side session state machine. It owns nothing
// durable itself: the token lives in the API client's store, the user record
// lives on the backend. The session is what pages consult to decide which
// navigation and data scope a run gets.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"leadcrm/internal/api"
	"leadcrm/internal/types"
)

// State is the session lifecycle.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrInvalidRole is returned when the backend hands back a user whose role the
// client does not recognize. The token is cleared before this surfaces.
var ErrInvalidRole = errors.New("invalid role")

// Backend is the slice of the API client the session needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (types.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (types.User, error)
	HasToken() bool
	ClearToken() error
}

// Session tracks who is logged in. Injected, not ambient: cmd wiring builds
// exactly one per run and hands it to the pages that need it.
type Session struct {
	api Backend
	log *zap.Logger

	mu    sync.Mutex
	state State
	user  types.User
}

// NewSession builds an unauthenticated session.
func NewSession(backend Backend, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{api: backend, log: log}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, if any.
func (s *Session) User() (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.state == StateAuthenticated
}

// Restore attempts a session restore from the persisted token. With no token
// it stays unauthenticated and returns nil; with a token it asks the backend
// who we are. Any failure, including an unrecognized role, clears the token.
func (s *Session) Restore(ctx context.Context) error {
	if !s.api.HasToken() {
		return nil
	}
	s.setState(StateLoading)

	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Info("session restore failed", zap.Error(err))
		if cerr := s.api.ClearToken(); cerr != nil {
			s.log.Warn("failed to clear token", zap.Error(cerr))
		}
		s.reset()
		return err
	}
	if !user.Role.Valid() {
		s.log.Warn("session restore rejected", zap.String("role", string(user.Role)))
		if cerr := s.api.ClearToken(); cerr != nil {
			s.log.Warn("failed to clear token", zap.Error(cerr))
		}
		s.reset()
		return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}
	s.setUser(user)
	return nil
}

// Login authenticates. On success the API client has already persisted the
// token; the session keeps the user. On failure the session returns to
// unauthenticated with no user.
func (s *Session) Login(ctx context.Context, email, password string) (types.User, error) {
	s.setState(StateLoading)

	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.reset()
		return types.User{}, err
	}
	if !user.Role.Valid() {
		if cerr := s.api.ClearToken(); cerr != nil {
			s.log.Warn("failed to clear token", zap.Error(cerr))
		}
		s.reset()
		return types.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}
	s.setUser(user)
	s.log.Info("logged in", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Logout tears the session down. The backend call is best-effort: a failure
// is logged and the local state still resets unconditionally.
func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("backend logout failed", zap.Error(err))
	}
	if err := s.api.ClearToken(); err != nil {
		s.log.Warn("failed to clear token", zap.Error(err))
	}
	s.reset()
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) setUser(user types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.user = types.User{}
}

// LoginMessage translates a login failure into the wording shown on the login
// form. Typed errors replace the substring matching the old client did.
func LoginMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrForbidden):
		return "Access denied."
	case errors.Is(err, api.ErrAccountLocked):
		return "Account locked. Try again later."
	case errors.Is(err, api.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, api.ErrBackendUnreachable):
		return "Cannot reach the server. Check your connection and retry."
	case errors.Is(err, ErrInvalidRole):
		return "Your account role is not supported by this client."
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
