package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// managementPage edits the six shared reference lists. Admin only.
// h/l switch between lists without leaving the page.
type managementPage struct {
	store  *crm.Store
	styles Styles

	section int
	records []types.ManagementRecord
	cursor  int

	form    *Form
	editing string
	pending bool
}

func newManagementPage(store *crm.Store, styles Styles) *managementPage {
	return &managementPage{store: store, styles: styles}
}

func (p *managementPage) Title() string   { return "Management" }
func (p *managementPage) Capturing() bool { return p.form != nil }

func (p *managementPage) current() types.ManagementType {
	return types.ManagementTypes[p.section]
}

func (p *managementPage) Reload() {
	p.records = p.store.Management(p.current())
	if p.cursor >= len(p.records) {
		p.cursor = len(p.records) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *managementPage) Update(msg tea.Msg) tea.Cmd {
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
		if p.cursor < len(p.records)-1 {
			p.cursor++
		}
	case "l":
		p.section = (p.section + 1) % len(types.ManagementTypes)
		p.cursor = 0
		p.Reload()
	case "h":
		p.section = (p.section - 1 + len(types.ManagementTypes)) % len(types.ManagementTypes)
		p.cursor = 0
		p.Reload()
	case "a":
		p.editing = ""
		p.form = NewForm("New "+p.current().Title(),
			NewFormField("Name", "", "value"))
	case "e":
		if p.cursor < len(p.records) {
			rec := p.records[p.cursor]
			p.editing = rec.ID
			p.form = NewForm("Rename "+p.current().Title(),
				NewFormField("Name", rec.Name, "value"))
		}
	case "d":
		if p.cursor < len(p.records) {
			id := p.records[p.cursor].ID
			t := p.current()
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.DeleteManagement(ctx, t, id)}
			}
		}
	}
	return nil
}

func (p *managementPage) updateForm(msg tea.Msg) tea.Cmd {
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

	name := p.form.Value(0)
	editing := p.editing
	t := p.current()
	if name == "" {
		p.form = nil
		return nil
	}
	p.pending = true

	store := p.store
	var rec types.ManagementRecord
	if editing != "" {
		for _, r := range p.records {
			if r.ID == editing {
				rec = r
				break
			}
		}
		rec.Name = name
	}
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		var err error
		if editing == "" {
			_, err = store.AddManagement(ctx, t, name)
		} else {
			_, err = store.UpdateManagement(ctx, rec)
		}
		return actionDoneMsg{err: err}
	}
}

func (p *managementPage) View(width int) string {
	if p.form != nil {
		return p.form.View(p.styles)
	}

	var tabs []string
	for i, t := range types.ManagementTypes {
		label := t.Title()
		if i == p.section {
			tabs = append(tabs, p.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, p.styles.TabInactive.Render(label))
		}
	}

	table := NewSimpleTable("", []string{"Name", "Status"})
	table.Cursor = p.cursor
	for _, rec := range p.records {
		table.AddRow(rec.Name, rec.Status)
	}

	return strings.Join(tabs, " ") + "\n\n" +
		table.View(p.styles) +
		p.styles.Muted.Render("h/l: switch list · a: add · e: rename · d: delete")
}
