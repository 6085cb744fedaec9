package main

import (
	"context"
	"fmt"

	"leadcrm/cmd/leadcrm/ui"
	"leadcrm/internal/api"
	"leadcrm/internal/auth"
	"leadcrm/internal/config"
)

// runInteractive wires the client, session, and token watcher into the
// terminal UI. A failed restore is not fatal; the login screen handles it.
func runInteractive(ctx context.Context) error {
	tokens, err := api.NewFileTokenStore(config.DefaultDir())
	if err != nil {
		return fmt.Errorf("failed to open token store: %w", err)
	}
	client := api.NewClient(cfg.API.BaseURL, tokens, logger.Named("api"))

	session := auth.NewSession(client, logger.Named("auth"))
	if err := session.Restore(ctx); err != nil {
		logger.Warn("session restore failed; showing login")
	}

	return ui.Run(ctx, session, client, tokens.Path(), cfg, logger.Named("ui"))
}
