// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"reactivities/cli/internal/credentials"
	apperr "reactivities/cli/internal/errors"
	"reactivities/cli/internal/httperrors"
	"reactivities/cli/internal/logging"
	"reactivities/cli/internal/manifest"
)

// maxBody caps how much of a response body is read.
const maxBody = 1 << 20

// HTTP implements API over the REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://localhost:5001/api")
	baseURL string
	// endpoints contains the URL paths for various API endpoints
	endpoints manifest.HTTPEndpoints
	// client is the underlying HTTP client with configured timeout and jar
	client    *http.Client
	log       *slog.Logger
	userAgent string
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
func newHTTP(baseURL string, endpoints manifest.HTTPEndpoints, opts Options) *HTTP {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "reactivities-cli"
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client: &http.Client{
			Timeout:   timeout,
			Jar:       opts.Jar,
			Transport: opts.Transport,
		},
		log:       log,
		userAgent: ua,
	}
}

// reply is a fully read response.
type reply struct {
	status int
	header http.Header
	body   []byte
}

// call performs one round trip. A nil error means a 2xx status; any other
// outcome is an *errors.E.
func (h *HTTP) call(ctx context.Context, op, method, path string, query url.Values, payload any) (*reply, error) {
	target := h.baseURL + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, apperr.Wrap(apperr.ValidationError, "payload could not be encoded", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "request could not be built", err)
	}
	reqID := uuid.NewString()
	h.setStandardHeaders(req, reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.DebugContext(ctx, "request failed", "op", op, "request_id", reqID, "url", logging.Mask(target), "error", logging.Mask(err.Error()))
		if httperrors.IsTransport(err) {
			return nil, apperr.Wrap(apperr.TransportError, "the server could not be reached", err)
		}
		return nil, apperr.Wrap(apperr.Unknown, "request did not complete", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportError, "response was cut off", err)
	}
	h.log.DebugContext(ctx, "request done",
		"op", op,
		"request_id", reqID,
		"method", method,
		"url", logging.Mask(target),
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	r := &reply{status: resp.StatusCode, header: resp.Header, body: data}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return r, nil
	}
	return r, parseProblem(resp.StatusCode, resp.Header.Get("Content-Type"), data)
}

// setStandardHeaders sets common headers for all API requests.
func (h *HTTP) setStandardHeaders(req *http.Request, requestID string) {
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", requestID)
}

// send validates payload, then posts it.
func (h *HTTP) send(ctx context.Context, op, path string, query url.Values, payload any) error {
	if err := credentials.Validate(payload); err != nil {
		return err
	}
	_, err := h.call(ctx, op, http.MethodPost, path, query, payload)
	return err
}

// decode unmarshals a successful body into out.
func decode(r *reply, out any) error {
	if err := json.Unmarshal(r.body, out); err != nil {
		return apperr.Wrap(apperr.Unknown, fmt.Sprintf("unexpected response shape (status %d)", r.status), err)
	}
	return nil
}
