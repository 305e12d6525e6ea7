// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend implements the credential operations against the
// Reactivities REST API.
//
// Every method performs exactly one round trip, never retries, and returns
// either nil or an *errors.E. Payloads are validated structurally before any
// request is sent.
package backend

import (
	"context"

	"reactivities/cli/internal/credentials"
	"reactivities/cli/internal/session"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// GetUserInfo returns the signed-in profile, or (nil, nil) when the
	// server reports no valid session.
	GetUserInfo(ctx context.Context) (*session.User, error)
	Login(ctx context.Context, creds credentials.Login) error
	Register(ctx context.Context, reg credentials.Registration) error
	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error
	ConfirmEmail(ctx context.Context, v credentials.EmailVerification) error
	ResendConfirmEmail(ctx context.Context, r credentials.ResendVerification) error
	ChangePassword(ctx context.Context, p credentials.ChangePassword) error
	ForgotPassword(ctx context.Context, p credentials.ForgotPassword) error
	ResetPassword(ctx context.Context, p credentials.ResetPassword) error
	// ExchangeGithubCode trades an OAuth authorization code for a session.
	ExchangeGithubCode(ctx context.Context, x credentials.OAuthExchange) (*OAuthResult, error)
	// ListActivities returns the activities visible to the signed-in user.
	ListActivities(ctx context.Context) ([]Activity, error)
}
