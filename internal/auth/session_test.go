package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadcrm/internal/api"
	"leadcrm/internal/types"
)

// fakeBackend implements Backend with function fields so each test overrides
// only what it needs.
type fakeBackend struct {
	loginFn  func(ctx context.Context, email, password string) (types.User, error)
	logoutFn func(ctx context.Context) error
	meFn     func(ctx context.Context) (types.User, error)
	hasToken bool
	cleared  int
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (types.User, error) {
	if f.loginFn == nil {
		return types.User{}, errors.New("login not stubbed")
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn(ctx)
}

func (f *fakeBackend) Me(ctx context.Context) (types.User, error) {
	if f.meFn == nil {
		return types.User{}, errors.New("me not stubbed")
	}
	return f.meFn(ctx)
}

func (f *fakeBackend) HasToken() bool { return f.hasToken }

func (f *fakeBackend) ClearToken() error {
	f.cleared++
	f.hasToken = false
	return nil
}

func TestRestoreWithoutToken(t *testing.T) {
	s := NewSession(&fakeBackend{hasToken: false}, nil)
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestRestoreSuccess(t *testing.T) {
	b := &fakeBackend{
		hasToken: true,
		meFn: func(ctx context.Context) (types.User, error) {
			return types.User{ID: "1", Role: types.RoleAdmin, Name: "Admin"}, nil
		},
	}
	s := NewSession(b, nil)
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAuthenticated, s.State())
	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestRestoreInvalidRoleClearsSession(t *testing.T) {
	b := &fakeBackend{
		hasToken: true,
		meFn: func(ctx context.Context) (types.User, error) {
			return types.User{ID: "9", Role: "superuser"}, nil
		},
	}
	s := NewSession(b, nil)
	err := s.Restore(context.Background())
	require.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.NotZero(t, b.cleared, "token must be cleared for unknown roles")
}

func TestRestoreFailureResets(t *testing.T) {
	b := &fakeBackend{
		hasToken: true,
		meFn: func(ctx context.Context) (types.User, error) {
			return types.User{}, errors.New("boom")
		},
	}
	s := NewSession(b, nil)
	require.Error(t, s.Restore(context.Background()))
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.NotZero(t, b.cleared, "token must not survive a failed restore")
	_, ok := s.User()
	assert.False(t, ok)
}

func TestLoginSuccess(t *testing.T) {
	b := &fakeBackend{
		loginFn: func(ctx context.Context, email, password string) (types.User, error) {
			assert.Equal(t, "sales@example.com", email)
			return types.User{ID: "u1", Role: types.RoleSales}, nil
		},
	}
	s := NewSession(b, nil)
	user, err := s.Login(context.Background(), "sales@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, StateAuthenticated, s.State())
}

func TestLoginFailureResets(t *testing.T) {
	b := &fakeBackend{
		loginFn: func(ctx context.Context, email, password string) (types.User, error) {
			return types.User{}, api.ErrUnauthorized
		},
	}
	s := NewSession(b, nil)
	_, err := s.Login(context.Background(), "x", "y")
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestLogoutIsBestEffort(t *testing.T) {
	b := &fakeBackend{
		hasToken: true,
		logoutFn: func(ctx context.Context) error { return errors.New("backend gone") },
	}
	s := NewSession(b, nil)
	s.Logout(context.Background())
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.NotZero(t, b.cleared, "local token cleared even when backend logout fails")
}

func TestLoginMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"forbidden", api.ErrForbidden, "Access denied."},
		{"locked", api.ErrAccountLocked, "Account locked. Try again later."},
		{"unauthorized", api.ErrUnauthorized, "Invalid email or password."},
		{"unreachable", api.ErrBackendUnreachable, "Cannot reach the server. Check your connection and retry."},
		{"invalid role", ErrInvalidRole, "Your account role is not supported by this client."},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LoginMessage(tc.err))
		})
	}
}
