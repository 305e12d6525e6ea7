// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"net/url"
	"strings"

	apperr "reactivities/cli/internal/errors"
)

// GitHubAuthorizeURL is GitHub's OAuth authorization page.
const GitHubAuthorizeURL = "https://github.com/login/oauth/authorize"

// DefaultScopes are the GitHub scopes requested at sign-in.
var DefaultScopes = []string{"read:user", "user:email"}

// OAuthApp identifies the registered GitHub OAuth application.
type OAuthApp struct {
	ClientID     string
	RedirectURL  string
	AuthorizeURL string
	Scopes       []string
}

// AuthorizeURL builds the browser URL that starts a GitHub sign-in.
func AuthorizeURL(app OAuthApp) (string, error) {
	if strings.TrimSpace(app.ClientID) == "" {
		return "", apperr.New(apperr.ValidationError, "github client id is not configured")
	}
	base := app.AuthorizeURL
	if base == "" {
		base = GitHubAuthorizeURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return "", apperr.Wrap(apperr.ValidationError, "github authorize url is invalid", err)
	}
	scopes := app.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	q := u.Query()
	q.Set("client_id", app.ClientID)
	if app.RedirectURL != "" {
		q.Set("redirect_uri", app.RedirectURL)
	}
	q.Set("scope", strings.Join(scopes, " "))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
