package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	user types.User
	err  error
}

// dataLoadedMsg fires when RefreshData (and the supporting schedule and
// management fetches) finished. err holds the refresh failure, if any.
type dataLoadedMsg struct {
	store *crm.Store
	err   error
}

// refreshedMsg fires after a background re-pull of the loaded store.
type refreshedMsg struct{ err error }

// actionDoneMsg fires when a mutation command finished. The store cache
// is already updated on success; nothing to carry but the error.
type actionDoneMsg struct{ err error }

// noticeMsg surfaces a Notifier message in the status banner.
type noticeMsg struct {
	level crm.Level
	text  string
}

// clearNoticeMsg hides the status banner.
type clearNoticeMsg struct{ seq int }

// tokenClearedMsg fires when the token file vanished outside this
// process. The UI drops straight back to the login screen.
type tokenClearedMsg struct{}

// tickMsg drives the optional auto refresh.
type tickMsg time.Time

// notices is a channel-backed crm.Notifier. The model drains it with
// waitForNotice so banner updates arrive as ordinary messages.
type notices struct {
	ch chan noticeMsg
}

func newNotices() *notices {
	return &notices{ch: make(chan noticeMsg, 16)}
}

// Notify implements crm.Notifier. Drops the notice when the channel is
// full rather than blocking a data-layer call.
func (n *notices) Notify(level crm.Level, text string) {
	select {
	case n.ch <- noticeMsg{level: level, text: text}:
	default:
	}
}

func (n *notices) wait() tea.Cmd {
	return func() tea.Msg {
		return <-n.ch
	}
}
