package crm

import (
	"context"

	"leadcrm/internal/types"
)

// AddUser creates a user via the admin user-management form.
func (s *Store) AddUser(ctx context.Context, user types.User) (types.User, error) {
	if s.role != types.RoleAdmin {
		return types.User{}, ErrNotPermitted
	}
	created, err := s.api.CreateUser(ctx, user)
	if err != nil {
		s.notifyErr(err)
		return types.User{}, err
	}

	s.mu.Lock()
	s.users = append(s.users, created)
	if created.Role == types.RoleSales {
		s.salespeople = append(s.salespeople, created)
	}
	s.mu.Unlock()

	s.notify.Notify(LevelSuccess, "User added.")
	return created, nil
}

// UpdateUser replaces a user record. Admin only.
func (s *Store) UpdateUser(ctx context.Context, user types.User) (types.User, error) {
	if s.role != types.RoleAdmin {
		return types.User{}, ErrNotPermitted
	}
	updated, err := s.api.UpdateUser(ctx, user)
	if err != nil {
		s.notifyErr(err)
		return types.User{}, err
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = updated
			break
		}
	}
	for i := range s.salespeople {
		if s.salespeople[i].ID == updated.ID {
			s.salespeople[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteUser removes a user permanently. Admin only; no soft delete exists.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if s.role != types.RoleAdmin {
		return ErrNotPermitted
	}
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	users := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	s.users = users
	sales := s.salespeople[:0]
	for _, u := range s.salespeople {
		if u.ID != id {
			sales = append(sales, u)
		}
	}
	s.salespeople = sales
	delete(s.targets, id)
	s.mu.Unlock()

	s.notify.Notify(LevelSuccess, "User deleted.")
	return nil
}
