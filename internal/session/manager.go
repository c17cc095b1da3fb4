// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session implements the client-side session manager.
//
// The manager owns the session aggregate: the current user, the
// authentication status, and the persisted bearer token. Callers observe
// state through Current and Watch; only the manager's three operations
// (Login, CheckAuthStatus, Logout) mutate it. User and status are always
// replaced together in a single snapshot swap, so readers never see a
// half-applied transition.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"gatepass/cli/internal/backend"
	"gatepass/cli/internal/tokenstore"
)

// Manager coordinates login, token verification, and logout against the
// auth service, persisting the session token in the injected store.
//
// Operations are not serialized against each other: two overlapping
// Login calls race and the last completed response wins, matching the
// behavior of the hosted web client this replaces. The snapshot swap
// itself is the only critical section.
type Manager struct {
	api   backend.API
	store tokenstore.Store
	log   zerolog.Logger

	mu          sync.RWMutex
	cur         Snapshot
	watchers    map[int]chan Snapshot
	nextWatcher int
}

// NewManager constructs a Manager in the StatusChecking state.
// Call Initialize to resolve the status from any persisted token.
func NewManager(api backend.API, store tokenstore.Store, log zerolog.Logger) *Manager {
	return &Manager{
		api:      api,
		store:    store,
		log:      log,
		cur:      Snapshot{Status: StatusChecking},
		watchers: make(map[int]chan Snapshot),
	}
}

// Initialize resolves the initial authentication status from the
// persisted token. The hosting application calls this once at startup;
// it is an explicit entry point rather than a constructor side effect
// so callers control when the network is touched.
func (m *Manager) Initialize(ctx context.Context) bool {
	ok, _ := m.CheckAuthStatus(ctx)
	return ok
}

// Current returns the latest completed session snapshot.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Login exchanges credentials for a session. On success the user, the
// authenticated status, and the persisted token are updated together and
// true is returned. On failure the returned error is an *AuthError
// carrying the server's message and no state is modified.
//
// Credentials are not validated locally; the server owns that.
func (m *Manager) Login(ctx context.Context, email, password string) (bool, error) {
	user, token, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.Debug().Err(err).Str("email", email).Msg("login failed")
		return false, newAuthError(err)
	}

	if err := m.store.Set(tokenstore.TokenKey, token); err != nil {
		// Treat a persistence failure like a failed login: the session
		// would not survive a restart, so don't pretend it exists.
		m.log.Error().Err(err).Msg("persisting session token failed")
		return false, &AuthError{Message: genericLoginMessage, Err: err}
	}

	m.transition(user, StatusAuthenticated)
	m.log.Info().Str("user", user.DisplayName()).Msg("logged in")
	return true, nil
}

// CheckAuthStatus verifies the persisted token with the auth service.
//
// No token: behaves exactly like Logout and returns false.
// Valid token: applies the same atomic update as Login, persists the
// possibly rotated token, and returns true.
// Invalid token or any network failure: the status drops to
// StatusNotAuthenticated but the current user and the stored token are
// left in place, and false is returned. This asymmetry with Logout is
// deliberate: a later successful check can revive the session without
// re-entering credentials.
//
// Verification failures are absorbed into the returned bool; the error
// result is reserved for conditions outside the state machine and is
// currently always nil.
func (m *Manager) CheckAuthStatus(ctx context.Context) (bool, error) {
	token, err := m.store.Get(tokenstore.TokenKey)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			// An unreadable store means there is no usable session;
			// same end state as a missing token.
			m.log.Warn().Err(err).Msg("token store unreadable")
		}
		m.Logout()
		return false, nil
	}

	user, fresh, err := m.api.CheckToken(ctx, token)
	if err != nil {
		m.log.Debug().Err(err).Msg("token verification failed")
		m.mu.Lock()
		m.cur = Snapshot{User: m.cur.User, Status: StatusNotAuthenticated}
		snap := m.cur
		m.mu.Unlock()
		m.notify(snap)
		return false, nil
	}

	if err := m.store.Set(tokenstore.TokenKey, fresh); err != nil {
		// Session is valid for this process even if the rotated token
		// could not be written back.
		m.log.Warn().Err(err).Msg("persisting rotated token failed")
	}

	m.transition(user, StatusAuthenticated)
	return true, nil
}

// Logout clears the session: the persisted token is deleted and the
// state drops to no user / StatusNotAuthenticated. Synchronous, makes
// no network call, and is idempotent.
func (m *Manager) Logout() {
	if err := m.store.Delete(tokenstore.TokenKey); err != nil {
		m.log.Warn().Err(err).Msg("deleting session token failed")
	}
	m.transition(nil, StatusNotAuthenticated)
}

// transition atomically replaces the session snapshot and notifies
// watchers. user must be non-nil iff status is StatusAuthenticated.
func (m *Manager) transition(user *backend.User, status Status) {
	m.mu.Lock()
	m.cur = Snapshot{User: user, Status: status}
	snap := m.cur
	m.mu.Unlock()
	m.notify(snap)
}
