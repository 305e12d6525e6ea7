// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"sync"
	"sync/atomic"

	"reactivities/cli/internal/backend"
	"reactivities/cli/internal/credentials"
	apperr "reactivities/cli/internal/errors"
	"reactivities/cli/internal/session"
)

// fakeAPI is an in-memory backend. Fields ending in Err make the matching
// call fail.
type fakeAPI struct {
	mu   sync.Mutex
	user *session.User
	// pending is who becomes signed in after a successful login or exchange.
	pending *session.User

	loginErr  error
	logoutErr error
	resendErr error
	plainErr  error
	oauthErr  error

	userCalls     atomic.Int32
	activityCalls atomic.Int32
	logoutCalls   atomic.Int32
	resendCalls   atomic.Int32

	gate chan struct{}
}

func (f *fakeAPI) GetUserInfo(ctx context.Context) (*session.User, error) {
	f.userCalls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return nil, nil
	}
	cp := *f.user
	return &cp, nil
}

func (f *fakeAPI) signIn() {
	f.mu.Lock()
	f.user = f.pending
	f.mu.Unlock()
}

func (f *fakeAPI) Login(ctx context.Context, creds credentials.Login) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.signIn()
	return nil
}

func (f *fakeAPI) Register(ctx context.Context, reg credentials.Registration) error {
	return f.plainErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.logoutCalls.Add(1)
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.mu.Lock()
	f.user = nil
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) ConfirmEmail(ctx context.Context, v credentials.EmailVerification) error {
	return f.plainErr
}

func (f *fakeAPI) ResendConfirmEmail(ctx context.Context, r credentials.ResendVerification) error {
	f.resendCalls.Add(1)
	return f.resendErr
}

func (f *fakeAPI) ChangePassword(ctx context.Context, p credentials.ChangePassword) error {
	return f.plainErr
}

func (f *fakeAPI) ForgotPassword(ctx context.Context, p credentials.ForgotPassword) error {
	return f.plainErr
}

func (f *fakeAPI) ResetPassword(ctx context.Context, p credentials.ResetPassword) error {
	return f.plainErr
}

func (f *fakeAPI) ExchangeGithubCode(ctx context.Context, x credentials.OAuthExchange) (*backend.OAuthResult, error) {
	if f.oauthErr != nil {
		return nil, f.oauthErr
	}
	f.signIn()
	return &backend.OAuthResult{}, nil
}

func (f *fakeAPI) ListActivities(ctx context.Context) ([]backend.Activity, error) {
	n := f.activityCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return nil, apperr.FromResponse(401, "", "")
	}
	return []backend.Activity{{ID: f.user.ID + "-a", Title: "batch " + string(rune('0'+n))}}, nil
}

type fakeJar struct {
	cleared atomic.Int32
}

func (j *fakeJar) Clear() error {
	j.cleared.Add(1)
	return nil
}
