package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"leadcrm/internal/auth"
	"leadcrm/internal/config"
	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

type phase int

const (
	phaseLogin phase = iota
	phaseLoading
	phaseReady
)

// page is one tab of the main interface. Capturing pages (forms open)
// receive every key; otherwise global navigation runs first.
type page interface {
	Title() string
	Reload()
	Capturing() bool
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
}

// Model is the root bubbletea model.
type Model struct {
	session *auth.Session
	backend crm.Backend
	cfg     *config.Config
	styles  Styles
	log     *zap.Logger
	notices *notices

	phase phase
	login *LoginForm
	store *crm.Store
	user  types.User

	pages  []page
	active int

	notice    *noticeMsg
	noticeSeq int
	showHelp  bool

	width  int
	height int
}

// NewModel builds the root model. The session decides whether the login
// screen or the loading state comes up first.
func NewModel(session *auth.Session, backend crm.Backend, cfg *config.Config, styles Styles, log *zap.Logger) Model {
	m := Model{
		session: session,
		backend: backend,
		cfg:     cfg,
		styles:  styles,
		log:     log,
		notices: newNotices(),
		phase:   phaseLogin,
		login:   NewLoginForm(),
		width:   100,
		height:  30,
	}
	if _, ok := session.User(); ok {
		m.phase = phaseLoading
	}
	return m
}

// Notifier returns the crm.Notifier feeding the status banner.
func (m Model) Notifier() crm.Notifier { return m.notices }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.notices.wait(), textinput.Blink}
	if m.phase == phaseLoading {
		cmds = append(cmds, m.loadData())
	}
	if interval := m.cfg.GetRefreshInterval(); interval > 0 {
		cmds = append(cmds, tick(interval))
	}
	return tea.Batch(cmds...)
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// opCtx bounds one user-triggered backend operation.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// loadData builds the store for the logged-in user and pulls
// everything the role is allowed to see.
func (m Model) loadData() tea.Cmd {
	session := m.session
	backend := m.backend
	notifier := m.notices
	log := m.log
	return func() tea.Msg {
		user, ok := session.User()
		if !ok {
			return tokenClearedMsg{}
		}
		store := crm.NewStore(backend, user, notifier, log.Named("crm"))

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		err := store.RefreshData(ctx)
		if err == nil {
			_ = store.RefreshSchedule(ctx)
			if user.Role == types.RoleAdmin {
				_ = store.RefreshManagement(ctx, types.ManagementTypes...)
			} else {
				_ = store.RefreshManagement(ctx,
					types.ManagementBrands, types.ManagementProducts, types.ManagementLocations)
			}
		}
		return dataLoadedMsg{store: store, err: err}
	}
}

func (m Model) refresh() tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		err := store.RefreshData(ctx)
		if err == nil {
			_ = store.RefreshSchedule(ctx)
		}
		return refreshedMsg{err: err}
	}
}

func (m *Model) buildPages() {
	m.pages = nil
	m.pages = append(m.pages, newDashboardPage(m.store, m.user, m.styles))
	m.pages = append(m.pages, newLeadsPage(m.store, m.user, m.styles))
	if m.user.Role == types.RoleAdmin {
		m.pages = append(m.pages, newUsersPage(m.store, m.styles))
		m.pages = append(m.pages, newTargetsPage(m.store, m.styles))
	}
	m.pages = append(m.pages, newCalendarPage(m.store, m.user, m.styles))
	m.pages = append(m.pages, newTasksPage(m.store, m.user, m.styles))
	if m.user.Role == types.RoleAdmin {
		m.pages = append(m.pages, newManagementPage(m.store, m.styles))
	}
	m.active = 0
}

func (m *Model) reloadPages() {
	for _, p := range m.pages {
		p.Reload()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case noticeMsg:
		m.notice = &msg
		m.noticeSeq++
		seq := m.noticeSeq
		clear := tea.Tick(4*time.Second, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
		return m, tea.Batch(m.notices.wait(), clear)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tokenClearedMsg:
		m.phase = phaseLogin
		m.login = NewLoginForm()
		m.store = nil
		m.pages = nil
		m.login.SetError("Session ended. Sign in again.")
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.login.SetError(auth.LoginMessage(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.phase = phaseLoading
		return m, m.loadData()

	case dataLoadedMsg:
		m.store = msg.store
		if user, ok := m.session.User(); ok {
			m.user = user
		}
		m.buildPages()
		m.reloadPages()
		m.phase = phaseReady
		return m, nil

	case refreshedMsg:
		m.reloadPages()
		return m, nil

	case actionDoneMsg:
		// Pages with an open form decide whether to close it based on
		// the outcome, so the message is routed after the reload.
		m.reloadPages()
		return m.routeToPage(msg)

	case tickMsg:
		interval := m.cfg.GetRefreshInterval()
		if interval <= 0 || m.phase != phaseReady {
			return m, nil
		}
		return m, tea.Batch(m.refresh(), tick(interval))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToPage(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLogin:
		submit, cmd := m.login.Update(msg)
		if submit {
			return m, m.submitLogin()
		}
		return m, cmd

	case phaseLoading:
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.activePage() != nil && m.activePage().Capturing() {
		return m.routeToPage(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "r":
		return m, m.refresh()
	case "tab", "right":
		m.active = (m.active + 1) % len(m.pages)
		return m, nil
	case "shift+tab", "left":
		m.active = (m.active - 1 + len(m.pages)) % len(m.pages)
		return m, nil
	case "ctrl+d":
		return m, m.logout()
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if n := int(s[0] - '0'); n <= len(m.pages) {
			m.active = n - 1
			return m, nil
		}
	}

	return m.routeToPage(msg)
}

func (m Model) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p := m.activePage(); p != nil {
		return m, p.Update(msg)
	}
	return m, nil
}

func (m Model) activePage() page {
	if m.phase != phaseReady || m.active < 0 || m.active >= len(m.pages) {
		return nil
	}
	return m.pages[m.active]
}

func (m Model) submitLogin() tea.Cmd {
	session := m.session
	email := m.login.Email()
	password := m.login.Password()
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		user, err := session.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m Model) logout() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		session.Logout(ctx)
		return tokenClearedMsg{}
	}
}

func (m Model) View() string {
	switch m.phase {
	case phaseLogin:
		return m.styles.Content.Render(m.login.View(m.styles))
	case phaseLoading:
		return m.styles.Content.Render(m.styles.Info.Render("Loading data..."))
	}

	if m.showHelp {
		return m.styles.Content.Render(renderHelp(m.styles, m.user.Role, m.width))
	}

	var sb strings.Builder

	title := fmt.Sprintf(" LeadCRM · %s (%s) ", m.user.Name, m.user.Role)
	sb.WriteString(m.styles.Header.Render(title))
	sb.WriteString("\n")

	var tabs []string
	for i, p := range m.pages {
		label := fmt.Sprintf("%d %s", i+1, p.Title())
		if i == m.active {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabs, " "))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.width))
	sb.WriteString("\n")

	if m.notice != nil {
		style := m.styles.Info
		switch m.notice.level {
		case crm.LevelSuccess:
			style = m.styles.Success
		case crm.LevelError:
			style = m.styles.Error
		}
		sb.WriteString(style.Render(" " + m.notice.text))
		sb.WriteString("\n")
	}

	if p := m.activePage(); p != nil {
		sb.WriteString(p.View(m.width))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("tab: switch · r: refresh · ?: help · ctrl+d: log out · q: quit"))
	return sb.String()
}
