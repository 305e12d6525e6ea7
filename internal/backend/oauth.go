// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"reactivities/cli/internal/credentials"
)

// OAuthResult is whatever the server hands back for a GitHub code exchange.
// The session itself is carried by the cookie; Token is only set when the
// server also returns a bearer token.
type OAuthResult struct {
	Token string
	Raw   map[string]any
}

// ExchangeGithubCode calls POST /account/github-login?code=<code>.
func (h *HTTP) ExchangeGithubCode(ctx context.Context, x credentials.OAuthExchange) (*OAuthResult, error) {
	if err := credentials.Validate(x); err != nil {
		return nil, err
	}
	r, err := h.call(ctx, "github-login", http.MethodPost, h.endpoints.GithubLogin, url.Values{"code": {x.Code}}, nil)
	if err != nil {
		return nil, err
	}
	res := &OAuthResult{Token: findBearerTokenInHeaders(r.header)}
	if len(r.body) > 0 {
		var raw map[string]any
		if json.Unmarshal(r.body, &raw) == nil {
			res.Raw = raw
			if res.Token == "" {
				res.Token = extractAccessToken(raw)
			}
		}
	}
	return res, nil
}

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 || !strings.EqualFold(v[:6], "bearer") {
		return ""
	}
	return strings.TrimSpace(v[6:])
}

// findBearerTokenInHeaders checks the Authorization header, then any header
// carrying a bearer value.
func findBearerTokenInHeaders(h http.Header) string {
	if t := parseBearerToken(h.Get("Authorization")); t != "" {
		return t
	}
	for _, vals := range h {
		for _, v := range vals {
			if t := parseBearerToken(v); t != "" {
				return t
			}
		}
	}
	return ""
}

// extractAccessToken tries the common field names for an access token.
func extractAccessToken(result map[string]any) string {
	for _, k := range []string{"access_token", "accessToken", "token"} {
		if v, ok := result[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
