// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package xdg resolves the XDG Base Directory locations used by the CLI.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name under the XDG base directories.
const AppName = "reactivities"

// ConfigDir returns the XDG config directory for reactivities.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/reactivities when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
