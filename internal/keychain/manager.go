// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain persists the cookie session in the OS credential store so a
// login survives between CLI invocations.
//
// Only secrets live here. The session cookie is the secret: whoever holds it is
// signed in as the user. Non-secret settings belong to internal/config.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "reactivities"

// Keys used for storing secrets in the OS keychain.
const (
	KeySessionCookies = "session_cookies"
)

// Manager provides thread-safe operations on the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring, such as
// keyring.NewArrayKeyring in tests.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		globalManager = nil
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only; the
// encrypted file backend is never allowed.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux", "freebsd", "openbsd":
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          allowedBackends,
		PassPrefix:               ServiceName,
		KeychainTrustApplication: true,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, err
	}
	return ring, nil
}

// SaveCookies stores the serialized session cookies.
// This method is thread-safe.
func (m *Manager) SaveCookies(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{
		Key:   KeySessionCookies,
		Data:  data,
		Label: "Reactivities session",
	})
}

// LoadCookies retrieves the serialized session cookies. A missing entry
// yields (nil, nil).
// This method is thread-safe.
func (m *Manager) LoadCookies() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, err := m.ring.Get(KeySessionCookies)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// ClearSession removes the stored session cookies. A missing entry is not an
// error.
// This method is thread-safe.
func (m *Manager) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ring.Remove(KeySessionCookies); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
