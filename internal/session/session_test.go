// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactivities/cli/internal/cache"
)

type fakeServer struct {
	mu    sync.Mutex
	user  *User
	calls atomic.Int32
}

func (f *fakeServer) fetch(ctx context.Context) (*User, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return nil, nil
	}
	cp := *f.user
	return &cp, nil
}

func (f *fakeServer) signIn(u *User) {
	f.mu.Lock()
	f.user = u
	f.mu.Unlock()
}

func newCache(t *testing.T) (*Cache, *fakeServer, *cache.Store) {
	t.Helper()
	srv := &fakeServer{}
	store := cache.New(nil)
	return NewCache(store, srv.fetch), srv, store
}

func TestAnonymousIsNotAnError(t *testing.T) {
	c, srv, _ := newCache(t)

	u, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.EqualValues(t, 1, srv.calls.Load(), "anonymous result is cached like any other")
}

func TestSetThenGetRoundTrip(t *testing.T) {
	c, srv, _ := newCache(t)
	want := &User{ID: "1", DisplayName: "Bob", Email: "bob@test.com", Roles: []string{"admin"}}

	c.Set(want)
	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.EqualValues(t, 0, srv.calls.Load())
}

func TestSetReplacesNotMerges(t *testing.T) {
	c, _, _ := newCache(t)
	c.Set(&User{ID: "1", DisplayName: "Bob", Roles: []string{"admin"}})
	c.Set(&User{ID: "2", Email: "tom@test.com"})

	got, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, &User{ID: "2", Email: "tom@test.com"}, got)
}

func TestRemoveClearsUserScopeAndStaysAnonymous(t *testing.T) {
	c, srv, store := newCache(t)
	var listCalls atomic.Int32
	store.Register("activities", cache.ScopeUser, func(context.Context) (any, error) {
		listCalls.Add(1)
		return []string{"a"}, nil
	})

	srv.signIn(&User{ID: "1"})
	_, err := c.Get(context.Background())
	require.NoError(t, err)
	_, err = store.Get(context.Background(), "activities")
	require.NoError(t, err)

	c.Remove()

	u, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u, "removed session must never come back without a new login")
	assert.EqualValues(t, 1, srv.calls.Load())

	_, ok := store.Peek("activities")
	assert.False(t, ok, "user-scoped list must be removed together with the session")
}

func TestInvalidateAfterRemoveRefetches(t *testing.T) {
	c, srv, _ := newCache(t)
	c.Remove()
	srv.signIn(&User{ID: "9"})

	c.Invalidate()
	u, err := c.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "9", u.ID)
}

// TestRandomSequencesNeverLeakAfterRemove drives random operation sequences
// and checks that a Get following a Remove never returns the removed profile.
func TestRandomSequencesNeverLeakAfterRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		c, srv, _ := newCache(t)
		srv.signIn(&User{ID: "old"})
		removed := false
		for step := 0; step < 20; step++ {
			switch rng.Intn(3) {
			case 0:
				c.Invalidate()
				// an invalidate models a fresh login; the server answers with
				// the identity signed in now
				removed = false
				srv.signIn(&User{ID: "new"})
			case 1:
				c.Remove()
				removed = true
			case 2:
				u, err := c.Get(context.Background())
				require.NoError(t, err)
				if removed {
					assert.Nil(t, u, "round %d step %d", round, step)
				}
			}
		}
	}
}

func TestHasRole(t *testing.T) {
	var anon *User
	assert.False(t, anon.HasRole("admin"))
	assert.True(t, (&User{Roles: []string{"admin"}}).HasRole("admin"))
	assert.False(t, (&User{}).HasRole("admin"))
}
