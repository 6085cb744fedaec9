package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"leadcrm/internal/types"
)

const helpCommon = `# LeadCRM Keys

## Global

| Key | Action |
|-----|--------|
| tab / shift+tab | switch page |
| 1-9 | jump to page |
| r | refresh data |
| ? | toggle this help |
| ctrl+d | log out |
| q | quit |

## Lists

| Key | Action |
|-----|--------|
| j / k | move cursor |
| a | add record |
| e | edit record |
| d | delete record |

## Leads

| Key | Action |
|-----|--------|
| space | select lead |
| esc | clear selection |

## Calendar and Tasks

| Key | Action |
|-----|--------|
| c | mark completed |
`

const helpAdmin = `
## Admin

| Key | Action |
|-----|--------|
| u | assign selected leads (Leads page) |
| enter | set targets (Targets page) |
| h / l | switch reference list (Management page) |
`

// renderHelp shows the keymap as rendered markdown. Falls back to the
// raw text when the renderer cannot start.
func renderHelp(styles Styles, role types.Role, width int) string {
	text := helpCommon
	if role == types.RoleAdmin {
		text += helpAdmin
	}

	style := "light"
	if styles.Theme.IsDark {
		style = "dark"
	}
	if width < 40 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n") + "\n" + styles.Muted.Render("press any key to close")
}
