package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// targetsPage sets and reviews monthly goals per sales user. Admin only.
type targetsPage struct {
	store  *crm.Store
	styles Styles

	people []types.User
	cursor int

	form    *Form
	pending bool
}

func newTargetsPage(store *crm.Store, styles Styles) *targetsPage {
	return &targetsPage{store: store, styles: styles}
}

func (p *targetsPage) Title() string   { return "Targets" }
func (p *targetsPage) Capturing() bool { return p.form != nil }

func (p *targetsPage) Reload() {
	p.people = p.store.Salespeople()
	if p.cursor >= len(p.people) {
		p.cursor = len(p.people) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *targetsPage) Update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(actionDoneMsg); ok {
		p.pending = false
		if done.err == nil {
			p.form = nil
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
		if p.cursor < len(p.people)-1 {
			p.cursor++
		}
	case "enter", "s":
		if p.cursor < len(p.people) {
			u := p.people[p.cursor]
			t, _ := p.store.Targets(u.ID)
			p.form = NewForm(fmt.Sprintf("Targets for %s", u.Name),
				NewFormField("Sales target", formatAmount(t.SalesTarget), "0"),
				NewFormField("Invoice target", formatAmount(t.InvoiceTarget), "0"),
			)
		}
	case "d":
		if p.cursor < len(p.people) {
			id := p.people[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.DeleteUserTargets(ctx, id)}
			}
		}
	}
	return nil
}

func (p *targetsPage) updateForm(msg tea.Msg) tea.Cmd {
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

	sales := parseAmount(p.form.Value(0))
	invoice := parseAmount(p.form.Value(1))

	if p.cursor >= len(p.people) {
		p.form = nil
		return nil
	}
	p.pending = true
	userID := p.people[p.cursor].ID
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		_, err := store.SetUserTargets(ctx, userID, sales, invoice)
		return actionDoneMsg{err: err}
	}
}

func (p *targetsPage) View(width int) string {
	if p.form != nil {
		return p.form.View(p.styles)
	}

	var sb strings.Builder
	barWidth := width / 3
	if barWidth < 24 {
		barWidth = 24
	}

	if len(p.people) == 0 {
		sb.WriteString(p.styles.Muted.Render("No sales users."))
		sb.WriteString("\n")
	}

	for i, u := range p.people {
		name := u.Name
		if i == p.cursor {
			name = p.styles.Selected.Render(" " + name + " ")
		} else {
			name = p.styles.Bold.Render(name)
		}
		sb.WriteString(name)
		sb.WriteString("\n")

		t, ok := p.store.Targets(u.ID)
		if !ok {
			sb.WriteString(p.styles.Muted.Render("  no targets set"))
			sb.WriteString("\n\n")
			continue
		}
		prog := p.store.CalculateUserProgress(u.ID)
		sb.WriteString(fmt.Sprintf("  sales   %10.2f / %-10.2f %s\n",
			t.SalesAchieved, t.SalesTarget, RenderProgress(prog.Sales, barWidth, p.styles)))
		sb.WriteString(fmt.Sprintf("  invoice %10.2f / %-10.2f %s\n",
			t.InvoiceAchieved, t.InvoiceTarget, RenderProgress(prog.Invoice, barWidth, p.styles)))
		sb.WriteString("\n")
	}

	sb.WriteString(p.styles.Muted.Render("enter: set targets · d: delete targets"))
	return sb.String()
}
