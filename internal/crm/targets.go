package crm

import (
	"context"

	"go.uber.org/zap"

	"leadcrm/internal/types"
)

// CalculateUserProgress derives achievement-vs-target percentages from the
// cached target record. A target of zero yields zero progress regardless of
// the achieved value; values above 100 stand for over-achievement and are
// not clamped here.
func (s *Store) CalculateUserProgress(userID string) types.Progress {
	t, ok := s.Targets(userID)
	if !ok {
		return types.Progress{}
	}
	return types.Progress{
		Sales:   progress(t.SalesAchieved, t.SalesTarget),
		Invoice: progress(t.InvoiceAchieved, t.InvoiceTarget),
	}
}

func progress(achieved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return achieved / target * 100
}

// SetUserTargets writes a user's monthly goals. Admin only. The cached record
// is replaced with the new targets plus whatever achieved values the server
// echoes back.
func (s *Store) SetUserTargets(ctx context.Context, userID string, salesTarget, invoiceTarget float64) (types.UserTargets, error) {
	if s.role != types.RoleAdmin {
		return types.UserTargets{}, ErrNotPermitted
	}
	t, err := s.api.PutTargets(ctx, userID, salesTarget, invoiceTarget)
	if err != nil {
		s.notifyErr(err)
		return types.UserTargets{}, err
	}

	s.mu.Lock()
	s.targets[userID] = t
	s.mu.Unlock()

	s.notify.Notify(LevelSuccess, "Targets saved.")
	return t, nil
}

// DeleteUserTargets clears a user's target record. Admin only; part of the
// client contract even though no page exposes it.
func (s *Store) DeleteUserTargets(ctx context.Context, userID string) error {
	if s.role != types.RoleAdmin {
		return ErrNotPermitted
	}
	if err := s.api.DeleteTargets(ctx, userID); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	delete(s.targets, userID)
	s.mu.Unlock()
	return nil
}

// refreshTargets re-fetches the target records for the given users after a
// lead mutation. Server truth only: no client-side incremental math, which is
// how an earlier drift between local sums and server aggregates crept in.
// Failures are logged, not surfaced; the mutation itself already succeeded.
func (s *Store) refreshTargets(ctx context.Context, userIDs ...string) {
	seen := map[string]bool{}
	for _, id := range userIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		// Sales sessions may only read their own record.
		if s.role == types.RoleSales && id != s.userID {
			continue
		}

		t, err := s.api.GetTargets(ctx, id)
		if err != nil {
			s.log.Warn("target re-fetch failed", zap.String("user", id), zap.Error(err))
			continue
		}
		s.mu.Lock()
		s.targets[id] = t
		s.mu.Unlock()
	}
}
