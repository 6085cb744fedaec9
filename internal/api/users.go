package api

import (
	"context"

	"leadcrm/internal/types"
)

// ListUsers returns every user record. Admin only; the backend rejects sales
// callers with 403.
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a user via the admin user-management form.
func (c *Client) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	var out types.User
	if err := c.post(ctx, "/users", user, &out); err != nil {
		return types.User{}, err
	}
	return out, nil
}

// UpdateUser replaces the user identified by user.ID.
func (c *Client) UpdateUser(ctx context.Context, user types.User) (types.User, error) {
	var out types.User
	if err := c.put(ctx, "/users/"+user.ID, user, &out); err != nil {
		return types.User{}, err
	}
	return out, nil
}

// DeleteUser removes a user permanently. There is no soft delete.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}

// ListSalespeople returns the sales users available for lead assignment.
// Available to both roles (sales needs it for assignment dropdowns).
func (c *Client) ListSalespeople(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := c.get(ctx, "/salespeople", &users); err != nil {
		return nil, err
	}
	return users, nil
}
