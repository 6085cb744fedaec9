package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// tasksPage lists the user's tasks. Completion is one-way, same rule as
// calendar events.
type tasksPage struct {
	store  *crm.Store
	user   types.User
	styles Styles

	tasks  []types.Task
	cursor int

	form    *Form
	editing string
	pending bool
}

func newTasksPage(store *crm.Store, user types.User, styles Styles) *tasksPage {
	return &tasksPage{store: store, user: user, styles: styles}
}

func (p *tasksPage) Title() string   { return "Tasks" }
func (p *tasksPage) Capturing() bool { return p.form != nil }

func (p *tasksPage) Reload() {
	p.tasks = p.store.Tasks()
	if p.cursor >= len(p.tasks) {
		p.cursor = len(p.tasks) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *tasksPage) Update(msg tea.Msg) tea.Cmd {
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
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case "a":
		p.editing = ""
		p.form = newTaskForm("New Task", types.Task{Priority: types.PriorityMedium})
	case "e":
		if p.cursor < len(p.tasks) {
			task := p.tasks[p.cursor]
			p.editing = task.ID
			p.form = newTaskForm("Edit Task", task)
		}
	case "c":
		if p.cursor < len(p.tasks) {
			id := p.tasks[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.CompleteTask(ctx, id)}
			}
		}
	case "d":
		if p.cursor < len(p.tasks) {
			id := p.tasks[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.DeleteTask(ctx, id)}
			}
		}
	}
	return nil
}

func newTaskForm(title string, task types.Task) *Form {
	due := ""
	if !task.Due.IsZero() {
		due = task.Due.Format("2006-01-02")
	}
	return NewForm(title,
		NewFormField("Title", task.Title, "task title"),
		NewFormField("Category", task.Category, "follow-up, admin..."),
		NewFormField("Priority", string(task.Priority), "low, medium, high"),
		NewFormField("Due", due, "2006-01-02"),
		NewFormField("Contact", task.Contact, "optional lead contact"),
		NewFormField("Notes", task.Notes, ""),
	)
}

func (p *tasksPage) updateForm(msg tea.Msg) tea.Cmd {
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

	task := types.Task{
		ID:       p.editing,
		UserID:   p.user.ID,
		Title:    p.form.Value(0),
		Category: p.form.Value(1),
		Priority: types.TaskPriority(p.form.Value(2)),
		Due:      parseWhen(p.form.Value(3)),
		Contact:  p.form.Value(4),
		Notes:    p.form.Value(5),
		Status:   types.TaskPending,
	}
	if task.Priority == "" {
		task.Priority = types.PriorityMedium
	}
	if p.editing != "" && p.cursor < len(p.tasks) {
		task.Status = p.tasks[p.cursor].Status
	}

	p.pending = true
	editing := p.editing
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		var err error
		if editing == "" {
			_, err = store.AddTask(ctx, task)
		} else {
			_, err = store.UpdateTask(ctx, task)
		}
		return actionDoneMsg{err: err}
	}
}

func (p *tasksPage) View(width int) string {
	if p.form != nil {
		return p.form.View(p.styles)
	}

	table := NewSimpleTable("", []string{"Due", "Title", "Category", "Priority", "Status"})
	table.Cursor = p.cursor
	for _, task := range p.tasks {
		due := ""
		if !task.Due.IsZero() {
			due = task.Due.Format("Jan 02")
		}
		table.AddRow(due, task.Title, task.Category, string(task.Priority), string(task.Status))
	}
	return table.View(p.styles) + p.styles.Muted.Render("a: add · e: edit · c: complete · d: delete")
}
