// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth coordinates credential operations with the session cache.
//
// Every operation returns an Outcome. The cache effect an operation has on
// success (invalidate, remove or nothing) is applied before the Outcome is
// returned and before the Navigate hook runs, so whatever the UI does next
// already sees the new session state.
package auth

import (
	"context"
	"log/slog"

	"reactivities/cli/internal/backend"
	"reactivities/cli/internal/cache"
	"reactivities/cli/internal/credentials"
	apperr "reactivities/cli/internal/errors"
	"reactivities/cli/internal/logging"
	"reactivities/cli/internal/session"
)

// KeyActivities caches the activity list of the signed-in user.
const KeyActivities cache.Key = "activities"

// Routes are the navigation targets used by login and logout.
type Routes struct {
	// Landing is where logout sends the user.
	Landing Route
	// Home is where login goes when the caller gave no origin.
	Home Route
}

// DefaultRoutes mirrors the web client.
var DefaultRoutes = Routes{Landing: "/", Home: "/activities"}

// CookieClearer forgets the locally held session credentials.
type CookieClearer interface {
	Clear() error
}

// Options configures a Coordinator.
type Options struct {
	Logger *slog.Logger
	// Jar is cleared on logout. Optional.
	Jar    CookieClearer
	Routes Routes
	// Navigate, when set, is called with the route of every successful
	// operation that has one, after its cache effect.
	Navigate func(ctx context.Context, r Route)
}

// Coordinator centralizes authentication-related operations against the
// backend and the session cache.
type Coordinator struct {
	be       backend.API
	store    *cache.Store
	session  *session.Cache
	jar      CookieClearer
	log      *slog.Logger
	routes   Routes
	navigate func(context.Context, Route)
}

// NewCoordinator registers the session and activities keys on store and
// returns a Coordinator driving them.
func NewCoordinator(be backend.API, store *cache.Store, opts Options) *Coordinator {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	routes := opts.Routes
	if routes.Landing == "" {
		routes.Landing = DefaultRoutes.Landing
	}
	if routes.Home == "" {
		routes.Home = DefaultRoutes.Home
	}
	c := &Coordinator{
		be:       be,
		store:    store,
		session:  session.NewCache(store, be.GetUserInfo),
		jar:      opts.Jar,
		log:      log,
		routes:   routes,
		navigate: opts.Navigate,
	}
	store.Register(KeyActivities, cache.ScopeUser, func(ctx context.Context) (any, error) {
		return be.ListActivities(ctx)
	})
	return c
}

// Session exposes the session cache for read access.
func (c *Coordinator) Session() *session.Cache { return c.session }

// CurrentUser returns the signed-in user, or nil when anonymous.
func (c *Coordinator) CurrentUser(ctx context.Context) (*session.User, error) {
	u, err := c.session.Get(ctx)
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return u, nil
}

// Activities returns the cached activity list, fetching it when needed.
func (c *Coordinator) Activities(ctx context.Context) ([]backend.Activity, error) {
	list, err := cache.Get[[]backend.Activity](ctx, c.store, KeyActivities)
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return list, nil
}

// Login signs in with email and password. On success every user-scoped entry
// is marked stale and the route is from, or Home when from is empty.
func (c *Coordinator) Login(ctx context.Context, creds credentials.Login, from Route) Outcome[Done] {
	if e := c.run(ctx, "login", func(ctx context.Context) error {
		return c.be.Login(ctx, creds)
	}); e != nil {
		return Outcome[Done]{Err: e}
	}
	c.session.InvalidateScope()
	return succeed(ctx, c, Outcome[Done]{Route: c.homeOr(from)})
}

// ExchangeOAuthCode completes a GitHub sign-in. Its cache effect matches
// Login.
func (c *Coordinator) ExchangeOAuthCode(ctx context.Context, code string, from Route) Outcome[*backend.OAuthResult] {
	var res *backend.OAuthResult
	if e := c.run(ctx, "github-login", func(ctx context.Context) error {
		var err error
		res, err = c.be.ExchangeGithubCode(ctx, credentials.OAuthExchange{Code: code})
		return err
	}); e != nil {
		return Outcome[*backend.OAuthResult]{Err: e}
	}
	c.session.InvalidateScope()
	return succeed(ctx, c, Outcome[*backend.OAuthResult]{Value: res, Route: c.homeOr(from)})
}

// Logout always succeeds locally: the session, every user-scoped entry and
// the stored cookies are cleared whatever the server answered. A server
// failure is reported in Remote.
func (c *Coordinator) Logout(ctx context.Context) Outcome[Done] {
	remote := c.run(ctx, "logout", c.be.Logout)
	c.session.Remove()
	if c.jar != nil {
		if err := c.jar.Clear(); err != nil {
			c.log.WarnContext(ctx, "stored session could not be cleared", "op", "logout", "error", err)
		}
	}
	if remote != nil {
		c.log.WarnContext(ctx, "server logout failed, signed out locally",
			"op", "logout", "kind", remote.Kind, "discriminator", remote.Discriminator)
	}
	return succeed(ctx, c, Outcome[Done]{Route: c.routes.Landing, Remote: remote})
}

// Register creates an account. The caller is not signed in afterwards.
func (c *Coordinator) Register(ctx context.Context, reg credentials.Registration) Outcome[Done] {
	return c.plain(ctx, "register", func(ctx context.Context) error { return c.be.Register(ctx, reg) })
}

func (c *Coordinator) VerifyEmail(ctx context.Context, v credentials.EmailVerification) Outcome[Done] {
	return c.plain(ctx, "verify-email", func(ctx context.Context) error { return c.be.ConfirmEmail(ctx, v) })
}

// ResendVerification asks for another confirmation mail. The outcome's
// Signal tells the UI which notice to show.
func (c *Coordinator) ResendVerification(ctx context.Context, r credentials.ResendVerification) Outcome[Done] {
	out := c.plain(ctx, "resend-email", func(ctx context.Context) error { return c.be.ResendConfirmEmail(ctx, r) })
	if out.OK() {
		out.Signal = SignalEmailSent
	} else {
		out.Signal = SignalCheckEmail
	}
	return out
}

func (c *Coordinator) ChangePassword(ctx context.Context, p credentials.ChangePassword) Outcome[Done] {
	return c.plain(ctx, "change-password", func(ctx context.Context) error { return c.be.ChangePassword(ctx, p) })
}

func (c *Coordinator) ForgotPassword(ctx context.Context, p credentials.ForgotPassword) Outcome[Done] {
	return c.plain(ctx, "forgot-password", func(ctx context.Context) error { return c.be.ForgotPassword(ctx, p) })
}

func (c *Coordinator) ResetPassword(ctx context.Context, p credentials.ResetPassword) Outcome[Done] {
	return c.plain(ctx, "reset-password", func(ctx context.Context) error { return c.be.ResetPassword(ctx, p) })
}

// plain runs an operation that has no cache effect and no route.
func (c *Coordinator) plain(ctx context.Context, op string, call func(context.Context) error) Outcome[Done] {
	if e := c.run(ctx, op, call); e != nil {
		return Outcome[Done]{Err: e}
	}
	return Outcome[Done]{}
}

// run performs one backend call and normalizes its failure.
func (c *Coordinator) run(ctx context.Context, op string, call func(context.Context) error) *apperr.E {
	c.log.DebugContext(ctx, "operation started", "op", op)
	err := call(ctx)
	if err == nil {
		c.log.DebugContext(ctx, "operation succeeded", "op", op)
		return nil
	}
	e := apperr.Normalize(err)
	c.log.DebugContext(ctx, "operation failed",
		"op", op,
		"kind", e.Kind,
		"discriminator", e.Discriminator,
		"status", e.Status,
		"message", logging.Mask(e.Message),
	)
	return e
}

// succeed fires the Navigate hook. Callers apply their cache effect first.
func succeed[T any](ctx context.Context, c *Coordinator, out Outcome[T]) Outcome[T] {
	if c.navigate != nil && out.Route != "" {
		c.navigate(ctx, out.Route)
	}
	return out
}

func (c *Coordinator) homeOr(from Route) Route {
	if from != "" {
		return from
	}
	return c.routes.Home
}
