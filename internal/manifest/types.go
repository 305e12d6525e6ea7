// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest holds the endpoint paths the CLI calls, relative to the
// configured API base URL.
package manifest

import (
	"net/url"
	"strings"
)

// HTTPEndpoints contains REST API endpoint paths.
type HTTPEndpoints struct {
	UserInfo           string `json:"user_info,omitempty"`            // e.g., "/account/user-info"
	Login              string `json:"login,omitempty"`                // e.g., "/login"
	Register           string `json:"register,omitempty"`             // e.g., "/account/register"
	Logout             string `json:"logout,omitempty"`               // e.g., "/account/logout"
	ConfirmEmail       string `json:"confirm_email,omitempty"`        // e.g., "/confirmEmail"
	ResendConfirmEmail string `json:"resend_confirm_email,omitempty"` // e.g., "/account/resendConfirmEmail"
	ChangePassword     string `json:"change_password,omitempty"`      // e.g., "/account/change-password"
	ForgotPassword     string `json:"forgot_password,omitempty"`      // e.g., "/forgotPassword"
	ResetPassword      string `json:"reset_password,omitempty"`       // e.g., "/resetPassword"
	GithubLogin        string `json:"github_login,omitempty"`         // e.g., "/account/github-login"
	Activities         string `json:"activities,omitempty"`           // e.g., "/activities"
}

// Defaults returns the paths served by the Reactivities API.
func Defaults() HTTPEndpoints {
	return HTTPEndpoints{
		UserInfo:           "/account/user-info",
		Login:              "/login",
		Register:           "/account/register",
		Logout:             "/account/logout",
		ConfirmEmail:       "/confirmEmail",
		ResendConfirmEmail: "/account/resendConfirmEmail",
		ChangePassword:     "/account/change-password",
		ForgotPassword:     "/forgotPassword",
		ResetPassword:      "/resetPassword",
		GithubLogin:        "/account/github-login",
		Activities:         "/activities",
	}
}

// Merge returns e with every non-empty path of override applied on top.
func (e HTTPEndpoints) Merge(override HTTPEndpoints) HTTPEndpoints {
	pick := func(base, o string) string {
		if strings.TrimSpace(o) != "" {
			return o
		}
		return base
	}
	return HTTPEndpoints{
		UserInfo:           pick(e.UserInfo, override.UserInfo),
		Login:              pick(e.Login, override.Login),
		Register:           pick(e.Register, override.Register),
		Logout:             pick(e.Logout, override.Logout),
		ConfirmEmail:       pick(e.ConfirmEmail, override.ConfirmEmail),
		ResendConfirmEmail: pick(e.ResendConfirmEmail, override.ResendConfirmEmail),
		ChangePassword:     pick(e.ChangePassword, override.ChangePassword),
		ForgotPassword:     pick(e.ForgotPassword, override.ForgotPassword),
		ResetPassword:      pick(e.ResetPassword, override.ResetPassword),
		GithubLogin:        pick(e.GithubLogin, override.GithubLogin),
		Activities:         pick(e.Activities, override.Activities),
	}
}

// NormalizeBaseURL trims trailing slashes and rejects URLs without scheme or
// host. It returns "" for an unusable URL.
func NormalizeBaseURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/")
}
