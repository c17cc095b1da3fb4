// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"errors"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies the gatepass namespace in the OS credential store.
const ServiceName = "gatepass"

// Keyring is a Store backed by the OS credential store
// (macOS Keychain, Windows Credential Manager, Secret Service, or pass).
type Keyring struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

// NewKeyring opens the OS keyring using native platform backends.
func NewKeyring() (*Keyring, error) {
	cfg := keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		},
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		LibSecretCollectionName:  "login",
		KeychainTrustApplication: true,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("secure storage unavailable: no supported OS keyring backend found")
	}
	return &Keyring{ring: ring}, nil
}

// Get reads a value from the keyring. Missing keys yield ErrNotFound.
func (k *Keyring) Get(key string) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	item, err := k.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(item.Data), nil
}

// Set writes a value to the keyring, replacing any previous value.
func (k *Keyring) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: ServiceName + " " + key,
	})
}

// Delete removes a value from the keyring. Missing keys are not an error.
func (k *Keyring) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
