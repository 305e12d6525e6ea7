// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactivities/cli/internal/cache"
	"reactivities/cli/internal/credentials"
	apperr "reactivities/cli/internal/errors"
	"reactivities/cli/internal/session"
)

type harness struct {
	api    *fakeAPI
	jar    *fakeJar
	store  *cache.Store
	coord  *Coordinator
	routes []Route
	// staleAtNavigate records whether the session was stale when each
	// navigation ran.
	staleAtNavigate []bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		api:   &fakeAPI{pending: &session.User{ID: "1", DisplayName: "Bob", Email: "a@b.com"}},
		jar:   &fakeJar{},
		store: cache.New(nil),
	}
	h.coord = NewCoordinator(h.api, h.store, Options{
		Jar: h.jar,
		Navigate: func(ctx context.Context, r Route) {
			h.routes = append(h.routes, r)
			_, fresh := h.coord.Session().Peek()
			h.staleAtNavigate = append(h.staleAtNavigate, !fresh)
		},
	})
	return h
}

var validLogin = credentials.Login{Email: "a@b.com", Password: "wrong"}

func TestLoginNotAllowedLeavesCacheAndSetsFlag(t *testing.T) {
	h := newHarness(t)
	h.api.loginErr = apperr.FromResponse(401, "NotAllowed", "")

	u, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, u)
	before := h.store.State(session.KeyUser)

	form := h.coord.NewLoginForm()
	out := form.Submit(context.Background(), validLogin, "")

	assert.Equal(t, apperr.AccountNotVerified, out.Kind())
	assert.True(t, form.NotVerified())
	assert.Empty(t, out.Route)
	assert.Empty(t, h.routes, "no navigation on failure")
	assert.Equal(t, before, h.store.State(session.KeyUser), "cache untouched")

	u, err = h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u, "user remains anonymous")
	assert.EqualValues(t, 1, h.api.userCalls.Load())
}

func TestLoginFailureKindsSurfaceAsIs(t *testing.T) {
	for _, disc := range []string{"Failed", "LockedOut", "Whatever"} {
		h := newHarness(t)
		h.api.loginErr = apperr.FromResponse(401, disc, "")
		form := h.coord.NewLoginForm()
		out := form.Submit(context.Background(), validLogin, "")
		assert.Equal(t, apperr.Classify(disc), out.Kind(), disc)
		assert.False(t, form.NotVerified(), disc)
	}
}

func TestLoginSuccessInvalidatesBeforeNavigation(t *testing.T) {
	h := newHarness(t)
	_, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)

	out := h.coord.Login(context.Background(), validLogin, "")
	require.True(t, out.OK())
	assert.Equal(t, Route("/activities"), out.Route)
	require.Equal(t, []Route{"/activities"}, h.routes)
	assert.Equal(t, []bool{true}, h.staleAtNavigate, "navigation must see a stale session")

	u, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Bob", u.DisplayName)
	assert.EqualValues(t, 2, h.api.userCalls.Load())
}

func TestLoginHonoursFrom(t *testing.T) {
	h := newHarness(t)
	out := h.coord.Login(context.Background(), validLogin, "/profiles/1")
	assert.Equal(t, Route("/profiles/1"), out.Route)
}

func TestLoginMarksUserScopeStale(t *testing.T) {
	h := newHarness(t)
	h.api.signIn()
	_, err := h.coord.Activities(context.Background())
	require.NoError(t, err)

	h.api.pending = &session.User{ID: "2"}
	require.True(t, h.coord.Login(context.Background(), validLogin, "").OK())
	assert.True(t, h.store.State(KeyActivities).Stale)

	list, err := h.coord.Activities(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2-a", list[0].ID)
}

func TestLogoutClearsEvenWhenNetworkFails(t *testing.T) {
	h := newHarness(t)
	h.api.signIn()
	_, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	_, err = h.coord.Activities(context.Background())
	require.NoError(t, err)

	h.api.logoutErr = apperr.Wrap(apperr.TransportError, "the server could not be reached", errors.New("dial tcp: connection refused"))
	out := h.coord.Logout(context.Background())

	assert.True(t, out.OK(), "logout always succeeds locally")
	require.NotNil(t, out.Remote)
	assert.Equal(t, apperr.TransportError, out.Remote.Kind)
	assert.Equal(t, Route("/"), out.Route)
	assert.EqualValues(t, 1, h.jar.cleared.Load())

	u, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u, "the server still holds the user, the client must not")
	assert.EqualValues(t, 1, h.api.userCalls.Load())

	_, ok := h.store.Peek(KeyActivities)
	assert.False(t, ok)
}

func TestLogoutSuccess(t *testing.T) {
	h := newHarness(t)
	h.api.signIn()
	out := h.coord.Logout(context.Background())
	assert.True(t, out.OK())
	assert.Nil(t, out.Remote)
	assert.EqualValues(t, 1, h.api.logoutCalls.Load())
}

func TestResendSignals(t *testing.T) {
	h := newHarness(t)
	h.api.loginErr = apperr.FromResponse(401, "NotAllowed", "")
	form := h.coord.NewLoginForm()
	form.Submit(context.Background(), validLogin, "")
	require.True(t, form.NotVerified())

	h.api.resendErr = apperr.FromResponse(400, "", "no such user")
	out := form.ResendEmail(context.Background())
	assert.Equal(t, SignalCheckEmail, out.Signal)
	assert.True(t, form.NotVerified(), "flag stays set while the resend fails")

	h.api.resendErr = nil
	out = form.ResendEmail(context.Background())
	assert.True(t, out.OK())
	assert.Equal(t, SignalEmailSent, out.Signal)
	assert.False(t, form.NotVerified())
	assert.EqualValues(t, 2, h.api.resendCalls.Load())
}

func TestOAuthExchangeThenSingleFetch(t *testing.T) {
	h := newHarness(t)
	_, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)

	out := h.coord.ExchangeOAuthCode(context.Background(), "good-code", "")
	require.True(t, out.OK())
	assert.Equal(t, []bool{true}, h.staleAtNavigate)

	h.api.gate = make(chan struct{})
	var wg sync.WaitGroup
	users := make([]*session.User, 8)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := h.coord.CurrentUser(context.Background())
			assert.NoError(t, err)
			users[i] = u
		}(i)
	}
	require.Eventually(t, func() bool { return h.coord.Session().Loading() }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(h.api.gate)
	wg.Wait()

	assert.EqualValues(t, 2, h.api.userCalls.Load(), "one fetch before, exactly one after the exchange")
	for _, u := range users {
		require.NotNil(t, u)
		assert.Equal(t, "1", u.ID)
	}
}

func TestOAuthFailureHasNoCacheEffect(t *testing.T) {
	h := newHarness(t)
	_, _ = h.coord.CurrentUser(context.Background())
	h.api.oauthErr = apperr.FromResponse(400, "", "bad code")

	out := h.coord.ExchangeOAuthCode(context.Background(), "bad", "")
	assert.False(t, out.OK())
	_, fresh := h.coord.Session().Peek()
	assert.True(t, fresh)
}

func TestOperationsWithoutCacheEffect(t *testing.T) {
	h := newHarness(t)
	h.api.signIn()
	_, err := h.coord.CurrentUser(context.Background())
	require.NoError(t, err)
	ctx := context.Background()

	outs := map[string]Outcome[Done]{
		"register": h.coord.Register(ctx, credentials.Registration{}),
		"verify":   h.coord.VerifyEmail(ctx, credentials.EmailVerification{}),
		"change":   h.coord.ChangePassword(ctx, credentials.ChangePassword{}),
		"forgot":   h.coord.ForgotPassword(ctx, credentials.ForgotPassword{}),
		"reset":    h.coord.ResetPassword(ctx, credentials.ResetPassword{}),
	}
	for name, out := range outs {
		assert.True(t, out.OK(), name)
		assert.Empty(t, out.Route, name)
	}
	_, fresh := h.coord.Session().Peek()
	assert.True(t, fresh)
	assert.EqualValues(t, 1, h.api.userCalls.Load())
	assert.Empty(t, h.routes)
}

func TestForeignErrorsAreNormalized(t *testing.T) {
	h := newHarness(t)
	h.api.plainErr = errors.New("boom")
	out := h.coord.Register(context.Background(), credentials.Registration{})
	require.NotNil(t, out.Err)
	assert.Equal(t, apperr.Unknown, out.Kind())
	assert.Error(t, out.AsError())
}

func TestAuthorizeURL(t *testing.T) {
	raw, err := AuthorizeURL(OAuthApp{ClientID: "cid", RedirectURL: "http://localhost:3000/auth-callback"})
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "/login/oauth/authorize", u.Path)
	assert.Equal(t, "cid", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:3000/auth-callback", u.Query().Get("redirect_uri"))
	assert.Equal(t, "read:user user:email", u.Query().Get("scope"))

	_, err = AuthorizeURL(OAuthApp{})
	assert.Equal(t, apperr.ValidationError, apperr.KindOf(err))
}
