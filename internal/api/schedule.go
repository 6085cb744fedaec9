package api

import (
	"context"

	"leadcrm/internal/types"
)

// Calendar events.

func (c *Client) ListEvents(ctx context.Context) ([]types.CalendarEvent, error) {
	var events []types.CalendarEvent
	if err := c.get(ctx, "/calendar/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error) {
	var out types.CalendarEvent
	if err := c.post(ctx, "/calendar/events", event, &out); err != nil {
		return types.CalendarEvent{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, event types.CalendarEvent) (types.CalendarEvent, error) {
	var out types.CalendarEvent
	if err := c.put(ctx, "/calendar/events/"+event.ID, event, &out); err != nil {
		return types.CalendarEvent{}, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.delete(ctx, "/calendar/events/"+id)
}

// Tasks.

func (c *Client) ListTasks(ctx context.Context) ([]types.Task, error) {
	var tasks []types.Task
	if err := c.get(ctx, "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, task types.Task) (types.Task, error) {
	var out types.Task
	if err := c.post(ctx, "/tasks", task, &out); err != nil {
		return types.Task{}, err
	}
	return out, nil
}

func (c *Client) UpdateTask(ctx context.Context, task types.Task) (types.Task, error) {
	var out types.Task
	if err := c.put(ctx, "/tasks/"+task.ID, task, &out); err != nil {
		return types.Task{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.delete(ctx, "/tasks/"+id)
}
