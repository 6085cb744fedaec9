package ui

import (
	"testing"

	"leadcrm/internal/config"
	"leadcrm/internal/types"
)

func TestPagesAreRoleGated(t *testing.T) {
	admin := types.User{ID: "a1", Role: types.RoleAdmin}
	m := Model{cfg: config.DefaultConfig(), styles: testStyles(), user: admin}
	m.store = emptyStore(types.RoleAdmin)
	m.buildPages()

	titles := map[string]bool{}
	for _, p := range m.pages {
		titles[p.Title()] = true
	}
	for _, want := range []string{"Dashboard", "Leads", "Users", "Targets", "Calendar", "Tasks", "Management"} {
		if !titles[want] {
			t.Fatalf("admin missing page %s", want)
		}
	}

	sales := types.User{ID: "u1", Role: types.RoleSales}
	m = Model{cfg: config.DefaultConfig(), styles: testStyles(), user: sales}
	m.store = emptyStore(types.RoleSales)
	m.buildPages()

	for _, p := range m.pages {
		switch p.Title() {
		case "Users", "Targets", "Management":
			t.Fatalf("sales user must not see %s", p.Title())
		}
	}
	if len(m.pages) != 4 {
		t.Fatalf("expected 4 sales pages, got %d", len(m.pages))
	}
}
