// Package crm caches the role-scoped CRM data for one session and keeps the
// derived target-progress figures consistent with server truth. Every
// mutation follows the same shape: call the backend first, touch the cache
// only after a success response, then re-fetch the affected users' target
// records rather than doing incremental client-side math. A failed call
// leaves the cache byte-for-byte untouched.
package crm

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"leadcrm/internal/types"
)

// ErrNotPermitted is returned for operations the current role may not
// perform, before any request goes out. The backend enforces the same rules;
// this just fails faster.
var ErrNotPermitted = errors.New("not permitted for this role")

// Backend is the slice of the API client the store consumes.
type Backend interface {
	ListLeads(ctx context.Context) ([]types.Lead, error)
	CreateLead(ctx context.Context, lead types.Lead) (types.Lead, error)
	UpdateLead(ctx context.Context, lead types.Lead) (types.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	BulkDeleteLeads(ctx context.Context, ids []string) error
	BulkAssignLeads(ctx context.Context, ids []string, userID string) error

	ListUsers(ctx context.Context) ([]types.User, error)
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	UpdateUser(ctx context.Context, user types.User) (types.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListSalespeople(ctx context.Context) ([]types.User, error)

	ListTargets(ctx context.Context) ([]types.UserTargets, error)
	GetTargets(ctx context.Context, userID string) (types.UserTargets, error)
	PutTargets(ctx context.Context, userID string, salesTarget, invoiceTarget float64) (types.UserTargets, error)
	DeleteTargets(ctx context.Context, userID string) error

	ListEvents(ctx context.Context) ([]types.CalendarEvent, error)
	CreateEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error

	ListTasks(ctx context.Context) ([]types.Task, error)
	CreateTask(ctx context.Context, task types.Task) (types.Task, error)
	UpdateTask(ctx context.Context, task types.Task) (types.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListManagement(ctx context.Context, t types.ManagementType) ([]types.ManagementRecord, error)
	CreateManagement(ctx context.Context, t types.ManagementType, rec types.ManagementRecord) (types.ManagementRecord, error)
	UpdateManagement(ctx context.Context, t types.ManagementType, rec types.ManagementRecord) (types.ManagementRecord, error)
	DeleteManagement(ctx context.Context, t types.ManagementType, id string) error
}

// Store is the session-scoped cache. It is safe for use from the UI event
// loop plus command goroutines; nothing here outlives the session.
type Store struct {
	api    Backend
	role   types.Role
	userID string
	notify Notifier
	log    *zap.Logger

	mu          sync.Mutex
	leads       []types.Lead
	users       []types.User
	salespeople []types.User
	targets     map[string]types.UserTargets
	events      []types.CalendarEvent
	tasks       []types.Task
	management  map[types.ManagementType][]types.ManagementRecord
}

// NewStore builds a store scoped to the authenticated user. notify and log
// may be nil.
func NewStore(backend Backend, user types.User, notify Notifier, log *zap.Logger) *Store {
	if notify == nil {
		notify = NopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		api:        backend,
		role:       user.Role,
		userID:     user.ID,
		notify:     notify,
		log:        log,
		targets:    make(map[string]types.UserTargets),
		management: make(map[types.ManagementType][]types.ManagementRecord),
	}
}

// Role returns the session role the store was built for.
func (s *Store) Role() types.Role {
	return s.role
}

// Leads returns a copy of the cached lead list.
func (s *Store) Leads() []types.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Lead looks a cached lead up by id.
func (s *Store) Lead(id string) (types.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return types.Lead{}, false
}

// Users returns a copy of the cached user list (admin sessions only fill it).
func (s *Store) Users() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.User, len(s.users))
	copy(out, s.users)
	return out
}

// Salespeople returns the sales users available for assignment.
func (s *Store) Salespeople() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.User, len(s.salespeople))
	copy(out, s.salespeople)
	return out
}

// Targets returns the cached target record for one user.
func (s *Store) Targets(userID string) (types.UserTargets, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[userID]
	return t, ok
}

// AllTargets returns a copy of every cached target record.
func (s *Store) AllTargets() map[string]types.UserTargets {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]types.UserTargets, len(s.targets))
	for k, v := range s.targets {
		out[k] = v
	}
	return out
}

// Events returns a copy of the cached calendar events.
func (s *Store) Events() []types.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Tasks returns a copy of the cached tasks.
func (s *Store) Tasks() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Management returns a copy of one cached reference list.
func (s *Store) Management(t types.ManagementType) []types.ManagementRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ManagementRecord, len(s.management[t]))
	copy(out, s.management[t])
	return out
}
