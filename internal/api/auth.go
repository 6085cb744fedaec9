package api

import (
	"context"

	"leadcrm/internal/types"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	User        types.User `json:"user"`
}

// Login authenticates and stores the returned bearer token on success.
func (c *Client) Login(ctx context.Context, email, password string) (types.User, error) {
	var out loginResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return types.User{}, err
	}
	if err := c.tokens.Set(out.AccessToken); err != nil {
		return types.User{}, err
	}
	return out.User, nil
}

// Logout tells the backend to invalidate the session. The caller decides what
// to do with the local token; session teardown is handled in internal/auth.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Me returns the user attached to the current token.
func (c *Client) Me(ctx context.Context) (types.User, error) {
	var u types.User
	if err := c.get(ctx, "/auth/me", &u); err != nil {
		return types.User{}, err
	}
	return u, nil
}
