package types

import "time"

// EventStatus is the lifecycle of a calendar event. Completion is one-way.
type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
)

// CalendarEvent is a per-user scheduling record, optionally linked to a lead
// contact.
type CalendarEvent struct {
	ID      string      `json:"id"`
	UserID  string      `json:"userId"`
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Start   time.Time   `json:"start"`
	End     time.Time   `json:"end,omitempty"`
	Status  EventStatus `json:"status"`
	Contact string      `json:"contact,omitempty"`
	Notes   string      `json:"notes,omitempty"`
}

// TaskStatus is the lifecycle of a task. Completion is one-way.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// TaskPriority orders tasks in list views.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a per-user todo record.
type Task struct {
	ID       string       `json:"id"`
	UserID   string       `json:"userId"`
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Priority TaskPriority `json:"priority"`
	Due      time.Time    `json:"due,omitempty"`
	Status   TaskStatus   `json:"status"`
	Contact  string       `json:"contact,omitempty"`
	Notes    string       `json:"notes,omitempty"`
}
