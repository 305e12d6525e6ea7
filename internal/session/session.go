// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the cached profile of the signed-in user.
//
// A nil *User is the anonymous state, not an error. The Cache is the only
// writer of the cached profile; the auth coordinator drives it through
// Invalidate, Remove and Set.
package session

import (
	"context"
	"slices"

	"reactivities/cli/internal/cache"
)

// KeyUser is the cache key of the current user's profile.
const KeyUser cache.Key = "user"

// User is the profile returned by the account endpoint.
type User struct {
	ID          string   `json:"id" yaml:"id"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Email       string   `json:"email" yaml:"email"`
	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// HasRole reports whether the user carries role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, role)
}

// Fetcher loads the current profile from the server. It returns (nil, nil)
// when the server reports no valid session.
type Fetcher func(ctx context.Context) (*User, error)

// Cache is the session view over a shared cache.Store.
type Cache struct {
	store *cache.Store
}

// NewCache registers the user key on store, in user scope, and returns the
// session view over it.
func NewCache(store *cache.Store, fetch Fetcher) *Cache {
	store.Register(KeyUser, cache.ScopeUser, func(ctx context.Context) (any, error) {
		u, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return u, nil
	}, cache.WithResetValue((*User)(nil)))
	return &Cache{store: store}
}

// Get returns the cached user, fetching it first when nothing fresh is
// cached. Concurrent callers share one fetch.
func (c *Cache) Get(ctx context.Context) (*User, error) {
	return cache.Get[*User](ctx, c.store, KeyUser)
}

// Peek returns the cached user without fetching. ok is false when the cache
// holds nothing fresh.
func (c *Cache) Peek() (u *User, ok bool) {
	v, ok := c.store.Peek(KeyUser)
	if !ok {
		return nil, false
	}
	u, _ = v.(*User)
	return u, true
}

// Set caches u, fully replacing the previous profile.
func (c *Cache) Set(u *User) {
	c.store.Set(KeyUser, u)
}

// Invalidate marks the profile stale so the next Get refetches it.
func (c *Cache) Invalidate() {
	c.store.Invalidate(KeyUser)
}

// InvalidateScope marks the profile and every other user-scoped entry stale.
func (c *Cache) InvalidateScope() {
	c.store.InvalidateScope(cache.ScopeUser)
}

// Remove clears the profile together with every user-scoped entry. Later Gets
// report anonymous without fetching until the next Invalidate.
func (c *Cache) Remove() {
	c.store.RemoveScope(cache.ScopeUser)
}

// Loading reports whether a fetch of the profile is in flight.
func (c *Cache) Loading() bool {
	return c.store.State(KeyUser).Loading
}
