// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reactivities/cli/internal/auth"
	"reactivities/cli/internal/backend"
	"reactivities/cli/internal/cache"
	"reactivities/cli/internal/config"
	apperr "reactivities/cli/internal/errors"
	"reactivities/cli/internal/httperrors"
	"reactivities/cli/internal/keychain"
	"reactivities/cli/internal/logging"
	"reactivities/cli/internal/manifest"
)

// app is everything a command needs to talk to the server.
type app struct {
	cfg     config.Config
	baseURL string
	log     *slog.Logger
	jar     *keychain.Jar
	coord   *auth.Coordinator
	in      *bufio.Reader
	out     io.Writer
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
		pterm.EnableDebugMessages()
	}
	return cfg, nil
}

// newApp wires config, logging, the persisted cookie session, the HTTP
// backend and the coordinator.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	base := manifest.NormalizeBaseURL(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("invalid base URL %q: expected http(s)://host[/path]", cfg.BaseURL)
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	// Without a keychain the session lives for this invocation only.
	var store keychain.CookieStore
	if km, err := keychain.GetManager(); err == nil {
		store = km
	} else {
		log.Warn("keychain unavailable, session will not be kept", "error", err)
	}
	jar, err := keychain.NewJar(base, store)
	if err != nil && store != nil {
		log.Warn("saved session could not be read", "error", err)
		jar, err = keychain.NewJar(base, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	jar.OnPersistError = func(err error) {
		log.Warn("session could not be saved to the keychain", "error", err)
	}

	be := backend.New(base, cfg.HTTPEndpoints(), backend.Options{
		Timeout:   cfg.RequestTimeout(),
		Jar:       jar,
		Logger:    log,
		UserAgent: "reactivities-cli/" + Version,
	})
	coord := auth.NewCoordinator(be, cache.New(log), auth.Options{
		Logger: log,
		Jar:    jar,
		Routes: auth.Routes{Landing: auth.Route(cfg.LandingRoute), Home: auth.Route(cfg.HomeRoute)},
		Navigate: func(ctx context.Context, r auth.Route) {
			log.DebugContext(ctx, "navigate", "route", string(r))
		},
	})

	return &app{
		cfg:     cfg,
		baseURL: base,
		log:     log,
		jar:     jar,
		coord:   coord,
		in:      bufio.NewReader(os.Stdin),
		out:     cmd.OutOrStdout(),
	}, nil
}

// report shows a classified failure and returns errReported.
func (a *app) report(action string, e *apperr.E) error {
	if e == nil {
		return nil
	}
	if e.Kind == apperr.TransportError && httperrors.IsTransport(e) {
		httperrors.Present(e, action, httperrors.ExtractHostFromURL(a.baseURL))
		return errReported
	}
	pterm.Print(logging.FormatFailure(e))
	return errReported
}

// reportErr is report for plain errors from read operations.
func (a *app) reportErr(action string, err error) error {
	if err == nil {
		return nil
	}
	return a.report(action, apperr.Normalize(err))
}

// showRoute prints where the web client would navigate next.
func (a *app) showRoute(r auth.Route) {
	if a.cfg.Verbose && r != "" {
		pterm.Debug.Println("next route: " + string(r))
	}
}
