package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"leadcrm/internal/auth"
	"leadcrm/internal/config"
	"leadcrm/internal/crm"
)

// Run starts the interactive interface and blocks until the user quits.
// tokenPath is watched so a logout in another terminal drops this one
// back to the login screen.
func Run(ctx context.Context, session *auth.Session, backend crm.Backend, tokenPath string, cfg *config.Config, log *zap.Logger) error {
	theme := DetectTheme()
	if cfg.UI.DarkMode {
		theme = DarkTheme()
	}
	model := NewModel(session, backend, cfg, NewStyles(theme), log)

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if tokenPath != "" {
		watcher, err := auth.WatchToken(tokenPath, func() {
			prog.Send(tokenClearedMsg{})
		}, log.Named("watch"))
		if err != nil {
			log.Warn("token watcher unavailable", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	_, err := prog.Run()
	return err
}
