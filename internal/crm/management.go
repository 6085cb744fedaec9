package crm

import (
	"context"

	"leadcrm/internal/types"
)

// AddManagement creates a reference value. Admins may add to any list; sales
// users only to the inline-creatable ones (brand, product, location, from the
// lead form). Accepted values are global immediately.
func (s *Store) AddManagement(ctx context.Context, t types.ManagementType, name string) (types.ManagementRecord, error) {
	if s.role != types.RoleAdmin && !t.InlineCreatable() {
		return types.ManagementRecord{}, ErrNotPermitted
	}
	created, err := s.api.CreateManagement(ctx, t, types.ManagementRecord{Name: name, Status: "active"})
	if err != nil {
		s.notifyErr(err)
		return types.ManagementRecord{}, err
	}

	s.mu.Lock()
	s.management[t] = append(s.management[t], created)
	s.mu.Unlock()
	return created, nil
}

// UpdateManagement replaces a reference record. Admin only.
func (s *Store) UpdateManagement(ctx context.Context, rec types.ManagementRecord) (types.ManagementRecord, error) {
	if s.role != types.RoleAdmin {
		return types.ManagementRecord{}, ErrNotPermitted
	}
	updated, err := s.api.UpdateManagement(ctx, rec.Type, rec)
	if err != nil {
		s.notifyErr(err)
		return types.ManagementRecord{}, err
	}

	s.mu.Lock()
	list := s.management[rec.Type]
	for i := range list {
		if list[i].ID == updated.ID {
			list[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteManagement removes a reference record. Admin only.
func (s *Store) DeleteManagement(ctx context.Context, t types.ManagementType, id string) error {
	if s.role != types.RoleAdmin {
		return ErrNotPermitted
	}
	if err := s.api.DeleteManagement(ctx, t, id); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	list := s.management[t]
	out := list[:0]
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	s.management[t] = out
	s.mu.Unlock()
	return nil
}
