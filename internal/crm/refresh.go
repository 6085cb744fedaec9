package crm

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"leadcrm/internal/types"
)

// ErrRefreshFailed is returned when any part of a refresh failed. Whatever
// sub-fetches succeeded have already been written; there is no rollback.
var ErrRefreshFailed = errors.New("failed to load data")

// RefreshData replaces the lead and target caches with server truth, scoped
// by role. Admin sessions additionally load the full user list and the
// salesperson list jointly; sales sessions load only their own target record
// and the salesperson list, and never touch the users or all-targets
// endpoints.
func (s *Store) RefreshData(ctx context.Context) error {
	failed := false

	leads, err := s.api.ListLeads(ctx)
	if err != nil {
		s.log.Warn("lead refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.leads = leads
		s.mu.Unlock()
	}

	if s.role == types.RoleAdmin {
		if err := s.refreshAdmin(ctx); err != nil {
			failed = true
		}
	} else {
		if err := s.refreshSales(ctx); err != nil {
			failed = true
		}
	}

	if failed {
		s.notify.Notify(LevelError, "Failed to load data.")
		return ErrRefreshFailed
	}
	return nil
}

func (s *Store) refreshAdmin(ctx context.Context) error {
	failed := false

	targets, err := s.api.ListTargets(ctx)
	if err != nil {
		s.log.Warn("target refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.targets = make(map[string]types.UserTargets, len(targets))
		for _, t := range targets {
			s.targets[t.UserID] = t
		}
		s.mu.Unlock()
	}

	// Users and salespeople are independent; fetch them together and await
	// jointly. Each write lands as soon as its own call succeeds, so a
	// partial failure still leaves the successful half cached.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.api.ListUsers(gctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.users = users
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		sales, err := s.api.ListSalespeople(gctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.salespeople = sales
		s.mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("user refresh failed", zap.Error(err))
		failed = true
	}

	if failed {
		return ErrRefreshFailed
	}
	return nil
}

func (s *Store) refreshSales(ctx context.Context) error {
	failed := false

	target, err := s.api.GetTargets(ctx, s.userID)
	if err != nil {
		s.log.Warn("own target refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.targets[s.userID] = target
		s.mu.Unlock()
	}

	sales, err := s.api.ListSalespeople(ctx)
	if err != nil {
		s.log.Warn("salespeople refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.salespeople = sales
		s.mu.Unlock()
	}

	if failed {
		return ErrRefreshFailed
	}
	return nil
}

// RefreshSchedule replaces the calendar-event and task caches. Pages call it
// on entry rather than as part of the main refresh.
func (s *Store) RefreshSchedule(ctx context.Context) error {
	failed := false

	events, err := s.api.ListEvents(ctx)
	if err != nil {
		s.log.Warn("event refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.events = events
		s.mu.Unlock()
	}

	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		s.log.Warn("task refresh failed", zap.Error(err))
		failed = true
	} else {
		s.mu.Lock()
		s.tasks = tasks
		s.mu.Unlock()
	}

	if failed {
		s.notify.Notify(LevelError, "Failed to load data.")
		return ErrRefreshFailed
	}
	return nil
}

// RefreshManagement replaces the cached reference lists for the given types
// (all six when none are named).
func (s *Store) RefreshManagement(ctx context.Context, list ...types.ManagementType) error {
	if len(list) == 0 {
		list = types.ManagementTypes
	}
	failed := false
	for _, t := range list {
		records, err := s.api.ListManagement(ctx, t)
		if err != nil {
			s.log.Warn("management refresh failed", zap.String("type", t.APIPath()), zap.Error(err))
			failed = true
			continue
		}
		s.mu.Lock()
		s.management[t] = records
		s.mu.Unlock()
	}
	if failed {
		s.notify.Notify(LevelError, "Failed to load data.")
		return ErrRefreshFailed
	}
	return nil
}
