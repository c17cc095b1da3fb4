// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"gatepass/cli/internal/backend"
	"gatepass/cli/internal/config"
	"gatepass/cli/internal/logging"
	"gatepass/cli/internal/session"
	"gatepass/cli/internal/tokenstore"
)

// buildManager wires a session manager from config, the HTTP backend,
// and the OS keyring token store. The store is returned as well for
// commands that inspect the raw token.
func buildManager() (*session.Manager, tokenstore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logging.New(cfg.LogLevel)

	store, err := tokenstore.NewKeyring()
	if err != nil {
		return nil, nil, err
	}

	api := backend.New(cfg.BaseURL, log)
	return session.NewManager(api, store, log), store, nil
}
