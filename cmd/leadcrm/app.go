package main

import (
	"context"
	"fmt"

	"leadcrm/internal/api"
	"leadcrm/internal/auth"
	"leadcrm/internal/config"
	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// newClient builds the API client over the file token store so CLI
// commands and the interactive UI share one login.
func newClient() (*api.Client, error) {
	tokens, err := api.NewFileTokenStore(config.DefaultDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	return api.NewClient(cfg.API.BaseURL, tokens, logger.Named("api")), nil
}

// restoreSession rebuilds the session from the saved token. Returns an
// error the user can act on when nobody is logged in.
func restoreSession(ctx context.Context) (*auth.Session, types.User, error) {
	client, err := newClient()
	if err != nil {
		return nil, types.User{}, err
	}

	session := auth.NewSession(client, logger.Named("auth"))
	if err := session.Restore(ctx); err != nil {
		return nil, types.User{}, fmt.Errorf("session restore failed: %s", auth.LoginMessage(err))
	}

	user, ok := session.User()
	if !ok {
		return nil, types.User{}, fmt.Errorf("not logged in, run: leadcrm login")
	}
	return session, user, nil
}

// newStore builds a loaded data store for one-shot CLI commands.
func newStore(ctx context.Context) (*crm.Store, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	session := auth.NewSession(client, logger.Named("auth"))
	if err := session.Restore(ctx); err != nil {
		return nil, fmt.Errorf("session restore failed: %s", auth.LoginMessage(err))
	}
	user, ok := session.User()
	if !ok {
		return nil, fmt.Errorf("not logged in, run: leadcrm login")
	}

	store := crm.NewStore(client, user, crm.NopNotifier{}, logger.Named("crm"))
	if err := store.RefreshData(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
