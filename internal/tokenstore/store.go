// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokenstore persists the session token in a key-value store.
//
// The store is a narrow port so the session manager never talks to the
// OS keyring directly; tests swap in the in-memory implementation.
package tokenstore

import "errors"

// TokenKey is the single slot under which the session token is persisted.
const TokenKey = "token"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("tokenstore: key not found")

// Store is a minimal key-value persistence port.
// Delete is idempotent: removing a missing key is not an error.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
