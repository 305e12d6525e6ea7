// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"log/slog"
	"net/http"
	"time"

	"reactivities/cli/internal/manifest"
)

// Options tunes the HTTP client.
type Options struct {
	// Timeout bounds each round trip; 10s when zero.
	Timeout time.Duration
	// Jar carries the cookie session between requests.
	Jar http.CookieJar
	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
	Logger    *slog.Logger
	UserAgent string
}

// New creates a backend API implementation with the given endpoints.
// Returns HTTP client (real backend).
func New(baseURL string, endpoints manifest.HTTPEndpoints, opts Options) API {
	return newHTTP(baseURL, endpoints, opts)
}
