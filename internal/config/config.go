// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session cookie goes to the OS
// keychain. Environment variables override the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"reactivities/cli/internal/manifest"
	"reactivities/cli/internal/xdg"
)

// DefaultBaseURL is the API of a locally running Reactivities server.
const DefaultBaseURL = "https://localhost:5001/api"

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL  string `json:"base_url"`
	LogLevel string `json:"log_level"`
	// Timeout is the per-request timeout in seconds.
	Timeout      int                    `json:"timeout"`
	GitHub       GitHub                 `json:"github"`
	Endpoints    manifest.HTTPEndpoints `json:"endpoints"`
	LandingRoute string                 `json:"landing_route"`
	HomeRoute    string                 `json:"home_route"`

	// Verbose is only ever set from the environment or flags.
	Verbose bool `json:"-"`
}

// GitHub holds the OAuth application used by github-login.
type GitHub struct {
	ClientID     string   `json:"client_id"`
	RedirectURL  string   `json:"redirect_url"`
	AuthorizeURL string   `json:"authorize_url"`
	Scopes       []string `json:"scopes"`
}

// envOverrides holds raw env values; empty values leave the file untouched.
type envOverrides struct {
	BaseURL           string   `env:"REACTIVITIES_BASE_URL"`
	LogLevel          string   `env:"REACTIVITIES_LOG_LEVEL"`
	Timeout           int      `env:"REACTIVITIES_TIMEOUT"`
	Verbose           bool     `env:"REACTIVITIES_VERBOSE"`
	GitHubClientID    string   `env:"REACTIVITIES_GITHUB_CLIENT_ID"`
	GitHubRedirectURL string   `env:"REACTIVITIES_GITHUB_REDIRECT_URL"`
	GitHubScopes      []string `env:"REACTIVITIES_GITHUB_SCOPES" envSeparator:","`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		LogLevel: "info",
		Timeout:  10,
		GitHub: GitHub{
			AuthorizeURL: "https://github.com/login/oauth/authorize",
			Scopes:       []string{"read:user", "user:email"},
		},
		LandingRoute: "/",
		HomeRoute:    "/activities",
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Fields absent from
// the file keep their defaults. Environment overrides are applied last.
func Load() (Config, error) {
	c := Defaults()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", p, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if raw.BaseURL != "" {
		c.BaseURL = raw.BaseURL
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	if raw.Timeout > 0 {
		c.Timeout = raw.Timeout
	}
	if raw.Verbose {
		c.Verbose = true
	}
	if raw.GitHubClientID != "" {
		c.GitHub.ClientID = raw.GitHubClientID
	}
	if raw.GitHubRedirectURL != "" {
		c.GitHub.RedirectURL = raw.GitHubRedirectURL
	}
	if len(raw.GitHubScopes) > 0 {
		c.GitHub.Scopes = raw.GitHubScopes
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// RequestTimeout is Timeout as a duration, 10s when unset.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// HTTPEndpoints returns the built-in endpoint table with the configured
// overrides applied.
func (c Config) HTTPEndpoints() manifest.HTTPEndpoints {
	return manifest.Defaults().Merge(c.Endpoints)
}
