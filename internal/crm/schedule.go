package crm

import (
	"context"

	"leadcrm/internal/types"
)

// Calendar events and tasks follow the same confirm-then-cache pattern as
// leads, minus the target re-fetch (they carry no revenue).

func (s *Store) AddEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error) {
	created, err := s.api.CreateEvent(ctx, event)
	if err != nil {
		s.notifyErr(err)
		return types.CalendarEvent{}, err
	}
	s.mu.Lock()
	s.events = append(s.events, created)
	s.mu.Unlock()
	s.notify.Notify(LevelSuccess, "Event added.")
	return created, nil
}

func (s *Store) UpdateEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error) {
	updated, err := s.api.UpdateEvent(ctx, event)
	if err != nil {
		s.notifyErr(err)
		return types.CalendarEvent{}, err
	}
	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == updated.ID {
			s.events[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.api.DeleteEvent(ctx, id); err != nil {
		s.notifyErr(err)
		return err
	}
	s.mu.Lock()
	out := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.events = out
	s.mu.Unlock()
	return nil
}

// CompleteEvent is the one-way scheduled→completed transition. Completing an
// already-completed event is a no-op.
func (s *Store) CompleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	var target *types.CalendarEvent
	for i := range s.events {
		if s.events[i].ID == id {
			ev := s.events[i]
			target = &ev
			break
		}
	}
	s.mu.Unlock()

	if target == nil || target.Status == types.EventCompleted {
		return nil
	}
	target.Status = types.EventCompleted
	_, err := s.UpdateEvent(ctx, *target)
	return err
}

func (s *Store) AddTask(ctx context.Context, task types.Task) (types.Task, error) {
	created, err := s.api.CreateTask(ctx, task)
	if err != nil {
		s.notifyErr(err)
		return types.Task{}, err
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, created)
	s.mu.Unlock()
	s.notify.Notify(LevelSuccess, "Task added.")
	return created, nil
}

func (s *Store) UpdateTask(ctx context.Context, task types.Task) (types.Task, error) {
	updated, err := s.api.UpdateTask(ctx, task)
	if err != nil {
		s.notifyErr(err)
		return types.Task{}, err
	}
	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == updated.ID {
			s.tasks[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		s.notifyErr(err)
		return err
	}
	s.mu.Lock()
	out := s.tasks[:0]
	for _, tk := range s.tasks {
		if tk.ID != id {
			out = append(out, tk)
		}
	}
	s.tasks = out
	s.mu.Unlock()
	return nil
}

// CompleteTask is the one-way pending→completed transition.
func (s *Store) CompleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	var target *types.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			tk := s.tasks[i]
			target = &tk
			break
		}
	}
	s.mu.Unlock()

	if target == nil || target.Status == types.TaskCompleted {
		return nil
	}
	target.Status = types.TaskCompleted
	_, err := s.UpdateTask(ctx, *target)
	return err
}
