// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "gatepass/cli/internal/backend"

// Status is the tri-state authentication status of the session.
type Status string

const (
	// StatusChecking means the persisted token has not been verified yet.
	// This is the initial state; the manager never returns to it after
	// Initialize completes.
	StatusChecking Status = "checking"
	// StatusAuthenticated means the server confirmed the session.
	StatusAuthenticated Status = "authenticated"
	// StatusNotAuthenticated means there is no confirmed session.
	StatusNotAuthenticated Status = "not_authenticated"
)

// Snapshot is an immutable view of the session state. User and Status
// are always written together, so a snapshot never shows a torn update.
type Snapshot struct {
	User   *backend.User
	Status Status
}

// Authenticated reports whether the snapshot holds a confirmed session.
func (s Snapshot) Authenticated() bool {
	return s.Status == StatusAuthenticated
}
