package ui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

type leadsMode int

const (
	leadsList leadsMode = iota
	leadsForm
	leadsAssign
)

// leadsPage lists leads with multi-select, add/edit forms, bulk delete,
// and bulk assign. Brand, product, and location values typed into the
// form that do not exist yet are created inline.
type leadsPage struct {
	store  *crm.Store
	user   types.User
	styles Styles

	leads  []types.Lead
	cursor int
	marked map[string]bool

	mode    leadsMode
	form    *Form
	editing string
	assign  *Form
	pending bool
}

func newLeadsPage(store *crm.Store, user types.User, styles Styles) *leadsPage {
	return &leadsPage{store: store, user: user, styles: styles, marked: make(map[string]bool)}
}

func (p *leadsPage) Title() string   { return "Leads" }
func (p *leadsPage) Capturing() bool { return p.mode != leadsList }

func (p *leadsPage) Reload() {
	p.leads = p.store.Leads()
	if p.cursor >= len(p.leads) {
		p.cursor = len(p.leads) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	present := make(map[string]bool, len(p.leads))
	for _, l := range p.leads {
		present[l.ID] = true
	}
	for id := range p.marked {
		if !present[id] {
			delete(p.marked, id)
		}
	}
}

func (p *leadsPage) selectedIDs() []string {
	if len(p.marked) > 0 {
		ids := make([]string, 0, len(p.marked))
		for _, l := range p.leads {
			if p.marked[l.ID] {
				ids = append(ids, l.ID)
			}
		}
		return ids
	}
	if p.cursor < len(p.leads) {
		return []string{p.leads[p.cursor].ID}
	}
	return nil
}

func (p *leadsPage) Update(msg tea.Msg) tea.Cmd {
	// A rejected mutation keeps the form open with the typed input so
	// the user can correct it; only a confirmed one closes it.
	if done, ok := msg.(actionDoneMsg); ok {
		p.pending = false
		if done.err == nil {
			if p.mode == leadsAssign {
				p.marked = make(map[string]bool)
			}
			p.mode = leadsList
			p.form = nil
			p.assign = nil
			p.editing = ""
		}
		return nil
	}

	switch p.mode {
	case leadsForm:
		return p.updateForm(msg)
	case leadsAssign:
		return p.updateAssign(msg)
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
		if p.cursor < len(p.leads)-1 {
			p.cursor++
		}
	case " ":
		if p.cursor < len(p.leads) {
			id := p.leads[p.cursor].ID
			if p.marked[id] {
				delete(p.marked, id)
			} else {
				p.marked[id] = true
			}
		}
	case "esc":
		p.marked = make(map[string]bool)
	case "a":
		p.editing = ""
		p.form = p.newLeadForm(types.Lead{Status: types.LeadNew, Source: types.SourceOther})
		p.mode = leadsForm
	case "e":
		if p.cursor < len(p.leads) {
			lead := p.leads[p.cursor]
			p.editing = lead.ID
			p.form = p.newLeadForm(lead)
			p.mode = leadsForm
		}
	case "d":
		ids := p.selectedIDs()
		if len(ids) == 0 {
			return nil
		}
		p.marked = make(map[string]bool)
		return p.deleteCmd(ids)
	case "u":
		if p.user.Role != types.RoleAdmin {
			return nil
		}
		if len(p.selectedIDs()) == 0 {
			return nil
		}
		p.assign = NewForm("Assign leads",
			NewFormField("User ID", "", "sales user ID, blank to unassign"))
		p.mode = leadsAssign
	}
	return nil
}

func (p *leadsPage) newLeadForm(l types.Lead) *Form {
	title := "New Lead"
	if l.ID != "" {
		title = "Edit Lead"
	}
	fields := []FormField{
		NewFormField("Name", l.Name, "lead name"),
		NewFormField("Email", l.Email, "email"),
		NewFormField("Phone", l.Phone, "phone"),
		NewFormField("Contact", l.RepName, "contact person"),
		NewFormField("Company", l.CompanyName, "company"),
		NewFormField("Price paid", formatAmount(l.PricePaid), "0"),
		NewFormField("Invoice billed", formatAmount(l.InvoiceBilled), "0"),
		NewFormField("Status", string(l.Status), "new, contacted, qualified, converted, lost"),
		NewFormField("Source", string(l.Source), "website, referral, call, other"),
		NewFormField("Brand", l.Brand, "brand, new values are created"),
		NewFormField("Product", l.Product, "product, new values are created"),
		NewFormField("Location", l.Location, "location, new values are created"),
		NewFormField("Notes", l.Notes, ""),
	}
	if p.user.Role == types.RoleAdmin {
		fields = append(fields, NewFormField("Assigned to", l.AssignedTo, "sales user ID, blank for unassigned"))
	}
	return NewForm(title, fields...)
}

func (p *leadsPage) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		p.mode = leadsList
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

	lead := types.Lead{
		ID:            p.editing,
		Name:          p.form.Value(0),
		Email:         p.form.Value(1),
		Phone:         p.form.Value(2),
		RepName:       p.form.Value(3),
		CompanyName:   p.form.Value(4),
		PricePaid:     parseAmount(p.form.Value(5)),
		InvoiceBilled: parseAmount(p.form.Value(6)),
		Status:        types.LeadStatus(p.form.Value(7)),
		Source:        types.LeadSource(p.form.Value(8)),
		Brand:         p.form.Value(9),
		Product:       p.form.Value(10),
		Location:      p.form.Value(11),
		Notes:         p.form.Value(12),
	}
	if p.user.Role == types.RoleAdmin {
		lead.AssignedTo = p.form.Value(13)
	} else {
		// Sales users keep their own leads.
		if p.editing == "" {
			lead.AssignedTo = p.user.ID
		} else if prev, ok := p.store.Lead(p.editing); ok {
			lead.AssignedTo = prev.AssignedTo
		}
	}
	if lead.Status == "" {
		lead.Status = types.LeadNew
	}

	p.pending = true
	editing := p.editing
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()

		ensureReference(ctx, store, types.ManagementBrands, lead.Brand)
		ensureReference(ctx, store, types.ManagementProducts, lead.Product)
		ensureReference(ctx, store, types.ManagementLocations, lead.Location)

		var err error
		if editing == "" {
			_, err = store.AddLead(ctx, lead)
		} else {
			_, err = store.UpdateLead(ctx, lead)
		}
		return actionDoneMsg{err: err}
	}
}

// ensureReference creates a missing brand, product, or location so the
// typed value exists before the lead referencing it lands.
func ensureReference(ctx context.Context, store *crm.Store, t types.ManagementType, name string) {
	if name == "" {
		return
	}
	for _, rec := range store.Management(t) {
		if rec.Name == name {
			return
		}
	}
	_, _ = store.AddManagement(ctx, t, name)
}

func (p *leadsPage) updateAssign(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		p.mode = leadsList
		p.assign = nil
		p.pending = false
		return nil
	}

	submitted, cmd := p.assign.Update(msg)
	if !submitted {
		return cmd
	}
	if p.pending {
		return nil
	}

	userID := p.assign.Value(0)
	ids := p.selectedIDs()
	p.pending = true

	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		err := store.BulkAssignLeads(ctx, ids, userID)
		return actionDoneMsg{err: err}
	}
}

func (p *leadsPage) deleteCmd(ids []string) tea.Cmd {
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		var err error
		if len(ids) == 1 {
			err = store.DeleteLead(ctx, ids[0])
		} else {
			err = store.BulkDeleteLeads(ctx, ids)
		}
		return actionDoneMsg{err: err}
	}
}

func (p *leadsPage) View(width int) string {
	switch p.mode {
	case leadsForm:
		return p.form.View(p.styles)
	case leadsAssign:
		return p.assign.View(p.styles)
	}

	table := NewSimpleTable("", []string{"Name", "Company", "Status", "Source", "Paid", "Billed", "Assigned"})
	table.Cursor = p.cursor
	table.Marked = make(map[int]bool)
	for i, l := range p.leads {
		assigned := l.AssignedTo
		if assigned == "" {
			assigned = "-"
		}
		table.AddRow(l.Name, l.CompanyName, string(l.Status), string(l.Source),
			formatAmount(l.PricePaid), formatAmount(l.InvoiceBilled), assigned)
		if p.marked[l.ID] {
			table.Marked[i] = true
		}
	}

	keys := "a: add · e: edit · d: delete · space: select"
	if p.user.Role == types.RoleAdmin {
		keys += " · u: assign"
	}
	return table.View(p.styles) + p.styles.Muted.Render(keys)
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
