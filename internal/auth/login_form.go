// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"sync"

	"reactivities/cli/internal/credentials"
	apperr "reactivities/cli/internal/errors"
)

// LoginForm holds the state of the sign-in screen. NotVerified turns on when
// a login is refused because the email is unconfirmed, and turns off again
// once a verification mail has been resent.
type LoginForm struct {
	c *Coordinator

	mu          sync.Mutex
	email       string
	notVerified bool
}

// NewLoginForm returns an empty form bound to c.
func (c *Coordinator) NewLoginForm() *LoginForm {
	return &LoginForm{c: c}
}

// Submit attempts a login and records the email for a later resend.
func (f *LoginForm) Submit(ctx context.Context, creds credentials.Login, from Route) Outcome[Done] {
	f.mu.Lock()
	f.email = creds.Email
	f.mu.Unlock()

	out := f.c.Login(ctx, creds, from)

	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case out.OK():
		f.notVerified = false
	case out.Kind() == apperr.AccountNotVerified:
		f.notVerified = true
	}
	return out
}

// NotVerified reports whether the UI should offer to resend the
// verification mail instead of a plain error.
func (f *LoginForm) NotVerified() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notVerified
}

// Email is the address of the last submitted login.
func (f *LoginForm) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// ResendEmail resends the verification mail to the last submitted address.
// On success the NotVerified flag is reset.
func (f *LoginForm) ResendEmail(ctx context.Context) Outcome[Done] {
	email := f.Email()
	out := f.c.ResendVerification(ctx, credentials.ResendVerification{Email: email})
	if out.OK() {
		f.mu.Lock()
		f.notVerified = false
		f.mu.Unlock()
	}
	return out
}
