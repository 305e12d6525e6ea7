// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

// CookieStore is the persistence a Jar writes through to. *Manager satisfies it.
type CookieStore interface {
	SaveCookies(data []byte) error
	LoadCookies() ([]byte, error)
	ClearSession() error
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Jar is an http.CookieJar that mirrors the cookies of one base URL into a
// CookieStore after every change. A nil store keeps cookies in memory only.
type Jar struct {
	mu    sync.Mutex
	inner *cookiejar.Jar
	base  *url.URL
	store CookieStore
	// OnPersistError, when set, receives write-through failures.
	OnPersistError func(error)
}

// NewJar returns a Jar for baseURL, restoring any cookies held by store.
func NewJar(baseURL string, store CookieStore) (*Jar, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &Jar{inner: inner, base: base, store: store}
	if store == nil {
		return j, nil
	}
	data, err := store.LoadCookies()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return j, nil
	}
	var saved []storedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		// unreadable state is dropped rather than blocking every command
		_ = store.ClearSession()
		return j, nil
	}
	cookies := make([]*http.Cookie, 0, len(saved))
	root := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
	for _, c := range saved {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/", Secure: base.Scheme == "https", HttpOnly: true})
	}
	inner.SetCookies(root, cookies)
	return j, nil
}

// SetCookies implements http.CookieJar.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	j.persistLocked()
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// HasSession reports whether any cookie is held for the base URL.
func (j *Jar) HasSession() bool {
	return len(j.Cookies(j.base)) > 0
}

// Clear forgets every cookie, in memory and in the store.
func (j *Jar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.inner = inner
	if j.store == nil {
		return nil
	}
	return j.store.ClearSession()
}

func (j *Jar) persistLocked() {
	if j.store == nil {
		return
	}
	current := j.inner.Cookies(j.base)
	var err error
	if len(current) == 0 {
		err = j.store.ClearSession()
	} else {
		saved := make([]storedCookie, 0, len(current))
		for _, c := range current {
			saved = append(saved, storedCookie{Name: c.Name, Value: c.Value})
		}
		var data []byte
		data, err = json.Marshal(saved)
		if err == nil {
			err = j.store.SaveCookies(data)
		}
	}
	if err != nil && j.OnPersistError != nil {
		j.OnPersistError(err)
	}
}
