package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// calendarPage lists the user's events. Completing an event is one-way;
// completed events only show a badge, never a revert action.
type calendarPage struct {
	store  *crm.Store
	user   types.User
	styles Styles

	events []types.CalendarEvent
	cursor int

	form    *Form
	editing string
	pending bool
}

func newCalendarPage(store *crm.Store, user types.User, styles Styles) *calendarPage {
	return &calendarPage{store: store, user: user, styles: styles}
}

func (p *calendarPage) Title() string   { return "Calendar" }
func (p *calendarPage) Capturing() bool { return p.form != nil }

func (p *calendarPage) Reload() {
	p.events = p.store.Events()
	if p.cursor >= len(p.events) {
		p.cursor = len(p.events) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *calendarPage) Update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(actionDoneMsg); ok {
		p.pending = false
		if done.err == nil {
			p.form = nil
			p.editing = ""
		}
		return nil
	}

	if p.form != nil {
		return p.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.events)-1 {
			p.cursor++
		}
	case "a":
		p.editing = ""
		p.form = newEventForm("New Event", types.CalendarEvent{})
	case "e":
		if p.cursor < len(p.events) {
			ev := p.events[p.cursor]
			p.editing = ev.ID
			p.form = newEventForm("Edit Event", ev)
		}
	case "c":
		if p.cursor < len(p.events) {
			id := p.events[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.CompleteEvent(ctx, id)}
			}
		}
	case "d":
		if p.cursor < len(p.events) {
			id := p.events[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.DeleteEvent(ctx, id)}
			}
		}
	}
	return nil
}

func newEventForm(title string, ev types.CalendarEvent) *Form {
	start := ""
	if !ev.Start.IsZero() {
		start = ev.Start.Format("2006-01-02 15:04")
	}
	return NewForm(title,
		NewFormField("Title", ev.Title, "event title"),
		NewFormField("Type", ev.Type, "meeting, call, demo..."),
		NewFormField("Start", start, "2006-01-02 15:04"),
		NewFormField("Contact", ev.Contact, "optional lead contact"),
		NewFormField("Notes", ev.Notes, ""),
	)
}

func (p *calendarPage) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		p.form = nil
		p.pending = false
		return nil
	}

	submitted, cmd := p.form.Update(msg)
	if !submitted {
		return cmd
	}
	if p.pending {
		return nil
	}

	ev := types.CalendarEvent{
		ID:      p.editing,
		UserID:  p.user.ID,
		Title:   p.form.Value(0),
		Type:    p.form.Value(1),
		Start:   parseWhen(p.form.Value(2)),
		Contact: p.form.Value(3),
		Notes:   p.form.Value(4),
		Status:  types.EventScheduled,
	}
	if prev, ok := p.currentEvent(); ok && p.editing != "" {
		ev.Status = prev.Status
	}

	p.pending = true
	editing := p.editing
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		var err error
		if editing == "" {
			_, err = store.AddEvent(ctx, ev)
		} else {
			_, err = store.UpdateEvent(ctx, ev)
		}
		return actionDoneMsg{err: err}
	}
}

func (p *calendarPage) currentEvent() (types.CalendarEvent, bool) {
	if p.cursor < len(p.events) {
		return p.events[p.cursor], true
	}
	return types.CalendarEvent{}, false
}

func (p *calendarPage) View(width int) string {
	if p.form != nil {
		return p.form.View(p.styles)
	}

	table := NewSimpleTable("", []string{"When", "Title", "Type", "Contact", "Status"})
	table.Cursor = p.cursor
	for _, ev := range p.events {
		when := ""
		if !ev.Start.IsZero() {
			when = ev.Start.Format("Jan 02 15:04")
		}
		table.AddRow(when, ev.Title, ev.Type, ev.Contact, string(ev.Status))
	}
	return table.View(p.styles) + p.styles.Muted.Render("a: add · e: edit · c: complete · d: delete")
}

// parseWhen accepts a date with or without a time of day.
func parseWhen(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02 15:04", s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
