// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"

	"reactivities/cli/internal/credentials"
	"reactivities/cli/internal/session"
)

// GetUserInfo calls GET /account/user-info. 401 and 204 both mean nobody is
// signed in.
func (h *HTTP) GetUserInfo(ctx context.Context) (*session.User, error) {
	r, err := h.call(ctx, "user-info", http.MethodGet, h.endpoints.UserInfo, nil, nil)
	if r != nil && r.status == http.StatusUnauthorized {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if r.status == http.StatusNoContent || len(r.body) == 0 {
		return nil, nil
	}
	var u session.User
	if err := decode(r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login calls POST /login?useCookies=true. The session arrives as a cookie.
func (h *HTTP) Login(ctx context.Context, creds credentials.Login) error {
	return h.send(ctx, "login", h.endpoints.Login, url.Values{"useCookies": {"true"}}, creds)
}

func (h *HTTP) Register(ctx context.Context, reg credentials.Registration) error {
	return h.send(ctx, "register", h.endpoints.Register, nil, reg)
}

func (h *HTTP) Logout(ctx context.Context) error {
	_, err := h.call(ctx, "logout", http.MethodPost, h.endpoints.Logout, nil, nil)
	return err
}

// ConfirmEmail calls GET /confirmEmail with userId and code as query
// parameters.
func (h *HTTP) ConfirmEmail(ctx context.Context, v credentials.EmailVerification) error {
	if err := credentials.Validate(v); err != nil {
		return err
	}
	q := url.Values{"userId": {v.UserID}, "code": {v.Code}}
	_, err := h.call(ctx, "confirm-email", http.MethodGet, h.endpoints.ConfirmEmail, q, nil)
	return err
}

// ResendConfirmEmail calls GET /account/resendConfirmEmail, identifying the
// account by email, user id, or both.
func (h *HTTP) ResendConfirmEmail(ctx context.Context, r credentials.ResendVerification) error {
	if err := credentials.Validate(r); err != nil {
		return err
	}
	q := url.Values{}
	if r.Email != "" {
		q.Set("email", r.Email)
	}
	if r.UserID != "" {
		q.Set("userId", r.UserID)
	}
	_, err := h.call(ctx, "resend-confirm-email", http.MethodGet, h.endpoints.ResendConfirmEmail, q, nil)
	return err
}

func (h *HTTP) ChangePassword(ctx context.Context, p credentials.ChangePassword) error {
	return h.send(ctx, "change-password", h.endpoints.ChangePassword, nil, p)
}

func (h *HTTP) ForgotPassword(ctx context.Context, p credentials.ForgotPassword) error {
	return h.send(ctx, "forgot-password", h.endpoints.ForgotPassword, nil, p)
}

func (h *HTTP) ResetPassword(ctx context.Context, p credentials.ResetPassword) error {
	return h.send(ctx, "reset-password", h.endpoints.ResetPassword, nil, p)
}
