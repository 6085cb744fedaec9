package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// usersPage manages CRM accounts. Admin only; the root model never
// builds it for sales users.
type usersPage struct {
	store  *crm.Store
	styles Styles

	users  []types.User
	cursor int

	form    *Form
	editing string
	pending bool
}

func newUsersPage(store *crm.Store, styles Styles) *usersPage {
	return &usersPage{store: store, styles: styles}
}

func (p *usersPage) Title() string   { return "Users" }
func (p *usersPage) Capturing() bool { return p.form != nil }

func (p *usersPage) Reload() {
	p.users = p.store.Users()
	if p.cursor >= len(p.users) {
		p.cursor = len(p.users) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *usersPage) Update(msg tea.Msg) tea.Cmd {
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
		if p.cursor < len(p.users)-1 {
			p.cursor++
		}
	case "a":
		p.editing = ""
		p.form = newUserForm("New User", types.User{Role: types.RoleSales, Status: types.UserActive})
	case "e":
		if p.cursor < len(p.users) {
			u := p.users[p.cursor]
			p.editing = u.ID
			p.form = newUserForm("Edit User", u)
		}
	case "d":
		if p.cursor < len(p.users) {
			id := p.users[p.cursor].ID
			store := p.store
			return func() tea.Msg {
				ctx, cancel := opCtx()
				defer cancel()
				return actionDoneMsg{err: store.DeleteUser(ctx, id)}
			}
		}
	}
	return nil
}

func newUserForm(title string, u types.User) *Form {
	return NewForm(title,
		NewFormField("Name", u.Name, "full name"),
		NewFormField("Email", u.Email, "email"),
		NewFormField("Phone", u.Phone, "phone"),
		NewFormField("Role", string(u.Role), "admin or sales"),
		NewFormField("Status", string(u.Status), "active or inactive"),
	)
}

func (p *usersPage) updateForm(msg tea.Msg) tea.Cmd {
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

	user := types.User{
		ID:     p.editing,
		Name:   p.form.Value(0),
		Email:  p.form.Value(1),
		Phone:  p.form.Value(2),
		Role:   types.Role(p.form.Value(3)),
		Status: types.UserStatus(p.form.Value(4)),
	}
	if user.Role == "" {
		user.Role = types.RoleSales
	}
	if user.Status == "" {
		user.Status = types.UserActive
	}

	p.pending = true
	editing := p.editing
	store := p.store
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		var err error
		if editing == "" {
			_, err = store.AddUser(ctx, user)
		} else {
			_, err = store.UpdateUser(ctx, user)
		}
		return actionDoneMsg{err: err}
	}
}

func (p *usersPage) View(width int) string {
	if p.form != nil {
		return p.form.View(p.styles)
	}

	table := NewSimpleTable("", []string{"Name", "Email", "Role", "Status", "Phone"})
	table.Cursor = p.cursor
	for _, u := range p.users {
		table.AddRow(u.Name, u.Email, string(u.Role), string(u.Status), u.Phone)
	}
	return table.View(p.styles) + p.styles.Muted.Render("a: add · e: edit · d: delete")
}
