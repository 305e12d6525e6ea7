// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cache provides the keyed, lazily populated in-memory store behind the
// session and every collection scoped to the signed-in user.
//
// Each key has a registered Loader. Get returns the cached value while it is
// fresh and otherwise populates it, sharing one in-flight load between all
// concurrent callers. Invalidate and Remove bump a per-key generation so that a
// load started before them can never write its result back.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key names one cached entry.
type Key string

// Scope groups keys that are cleared together.
type Scope int

const (
	// ScopeGlobal entries are unrelated to who is signed in.
	ScopeGlobal Scope = iota
	// ScopeUser entries belong to the current session and are removed with it.
	ScopeUser
)

// ErrUnregistered is returned by Get for a key without a Loader.
var ErrUnregistered = errors.New("cache: key not registered")

// Loader fetches the value of one key from the source of truth.
type Loader func(ctx context.Context) (any, error)

// Option configures a registered key.
type Option func(*query)

// WithResetValue makes Remove leave value behind as a fresh entry instead of
// emptying the key, so later reads do not hit the Loader until the key is
// invalidated.
func WithResetValue(value any) Option {
	return func(q *query) {
		q.reset = value
		q.hasReset = true
	}
}

// State is a snapshot of one key.
type State struct {
	Cached  bool
	Stale   bool
	Loading bool
}

type query struct {
	load     Loader
	scope    Scope
	reset    any
	hasReset bool

	value    any
	has      bool
	stale    bool
	gen      uint64
	inflight int
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	group   singleflight.Group
	queries map[Key]*query
	log     *slog.Logger
}

// New returns an empty Store. A nil logger discards output.
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{queries: make(map[Key]*query), log: log}
}

// Register binds a Loader to key. Registering a key again replaces its Loader
// and drops any cached value.
func (s *Store) Register(key Key, scope Scope, load Loader, opts ...Option) {
	q := &query{load: load, scope: scope}
	for _, opt := range opts {
		opt(q)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.queries[key]; ok {
		q.gen = old.gen + 1
	}
	s.queries[key] = q
}

// Get returns the fresh cached value of key or populates it. Concurrent callers
// for the same generation share a single Loader call. If ctx ends first, Get
// returns ctx.Err() while the load itself runs to completion for the others.
func (s *Store) Get(ctx context.Context, key Key) (any, error) {
	s.mu.Lock()
	q, ok := s.queries[key]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, key)
	}
	if q.has && !q.stale {
		v := q.value
		s.mu.Unlock()
		return v, nil
	}
	gen := q.gen
	load := q.load
	q.inflight++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		q.inflight--
		s.mu.Unlock()
	}()

	ch := s.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		s.log.Debug("cache populate", "key", string(key), "gen", gen)
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.commit(key, q, gen, v)
		return v, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// commit stores v only if key was not invalidated, removed or re-registered
// while the load was in flight.
func (s *Store) commit(key Key, q *query, gen uint64, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.queries[key]; !ok || cur != q || q.gen != gen {
		s.log.Debug("cache discard", "key", string(key), "gen", gen)
		return
	}
	q.value = v
	q.has = true
	q.stale = false
}

// Peek returns the cached value if it is fresh, without loading.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queries[key]
	if !ok || !q.has || q.stale {
		return nil, false
	}
	return q.value, true
}

// Set caches v as the fresh value of key, replacing whatever was there.
func (s *Store) Set(key Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queries[key]
	if !ok {
		return
	}
	q.gen++
	q.value = v
	q.has = true
	q.stale = false
}

// Invalidate marks keys stale; the next Get loads again.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if q, ok := s.queries[k]; ok {
			q.gen++
			q.stale = true
		}
	}
}

// InvalidateScope marks every key of scope stale.
func (s *Store) InvalidateScope(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.queries {
		if q.scope == scope {
			q.gen++
			q.stale = true
		}
	}
}

// Remove drops the cached value of keys, or resets them to their reset value.
func (s *Store) Remove(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if q, ok := s.queries[k]; ok {
			q.remove()
		}
	}
}

// RemoveScope removes every key of scope in one step, so no reader can observe
// a partially cleared scope.
func (s *Store) RemoveScope(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.queries {
		if q.scope == scope {
			q.remove()
		}
	}
}

func (q *query) remove() {
	q.gen++
	q.stale = false
	if q.hasReset {
		q.value = q.reset
		q.has = true
		return
	}
	q.value = nil
	q.has = false
}

// State reports the status of key.
func (s *Store) State(key Key) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queries[key]
	if !ok {
		return State{}
	}
	return State{Cached: q.has, Stale: q.stale, Loading: q.inflight > 0}
}

// Get is the typed form of Store.Get. A nil cached value yields the zero T.
func Get[T any](ctx context.Context, s *Store, key Key) (T, error) {
	var zero T
	v, err := s.Get(ctx, key)
	if err != nil || v == nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: %s holds %T", key, v)
	}
	return t, nil
}
