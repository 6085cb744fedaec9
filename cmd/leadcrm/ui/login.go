package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginForm is the email/password screen shown while unauthenticated.
type LoginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errText  string
	busy     bool
}

// NewLoginForm builds the login screen with the email field focused.
func NewLoginForm() *LoginForm {
	email := textinput.New()
	email.Placeholder = "you@company.com"
	email.CharLimit = 120
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120
	password.Width = 36

	return &LoginForm{email: email, password: password}
}

// SetError shows a failure message and re-enables the form.
func (f *LoginForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

// Update handles key events. submit is true when both fields should be
// sent to the backend.
func (f *LoginForm) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if f.busy {
		return false, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			f.toggleFocus()
			return false, nil
		case tea.KeyEnter:
			if f.focus == 0 {
				f.toggleFocus()
				return false, nil
			}
			if f.Email() == "" || f.Password() == "" {
				f.errText = "Email and password are required."
				return false, nil
			}
			f.errText = ""
			f.busy = true
			return true, nil
		}
	}

	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return false, cmd
}

func (f *LoginForm) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.email.Blur()
		f.password.Focus()
	} else {
		f.focus = 0
		f.password.Blur()
		f.email.Focus()
	}
}

// Email returns the trimmed email value.
func (f *LoginForm) Email() string { return strings.TrimSpace(f.email.Value()) }

// Password returns the password value.
func (f *LoginForm) Password() string { return f.password.Value() }

// View renders the login screen.
func (f *LoginForm) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("LeadCRM"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Sign in to continue"))
	sb.WriteString("\n\n")

	emailLabel := styles.FormLabel.Render("Email")
	passLabel := styles.FormLabel.Render("Password")
	if f.focus == 0 {
		emailLabel = styles.FormFocus.Width(16).Render("Email")
	} else {
		passLabel = styles.FormFocus.Width(16).Render("Password")
	}

	sb.WriteString(emailLabel + f.email.View() + "\n")
	sb.WriteString(passLabel + f.password.View() + "\n\n")

	if f.busy {
		sb.WriteString(styles.Info.Render("Signing in..."))
	} else if f.errText != "" {
		sb.WriteString(styles.Error.Render(f.errText))
	} else {
		sb.WriteString(styles.Muted.Render("enter: sign in · ctrl+c: quit"))
	}
	return sb.String()
}
