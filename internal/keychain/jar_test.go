// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManagerWithRing(keyring.NewArrayKeyring(nil))
}

func TestManagerCookiesRoundTrip(t *testing.T) {
	m := newTestManager(t)

	data, err := m.LoadCookies()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, m.SaveCookies([]byte(`[{"name":"a","value":"b"}]`)))
	data, err = m.LoadCookies()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a","value":"b"}]`, string(data))

	require.NoError(t, m.ClearSession())
	require.NoError(t, m.ClearSession(), "clearing twice is not an error")
	data, err = m.LoadCookies()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestJarPersistsAcrossInstances(t *testing.T) {
	m := newTestManager(t)
	base := "https://localhost:5001/api"
	u, _ := url.Parse(base + "/login")

	j, err := NewJar(base, m)
	require.NoError(t, err)
	assert.False(t, j.HasSession())

	j.SetCookies(u, []*http.Cookie{{Name: ".AspNetCore.Identity.Application", Value: "secret", Path: "/"}})
	assert.True(t, j.HasSession())

	restored, err := NewJar(base, m)
	require.NoError(t, err)
	cookies := restored.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, ".AspNetCore.Identity.Application", cookies[0].Name)
	assert.Equal(t, "secret", cookies[0].Value)
}

func TestJarClearRemovesPersistedCookies(t *testing.T) {
	m := newTestManager(t)
	base := "https://localhost:5001/api"
	u, _ := url.Parse(base)

	j, err := NewJar(base, m)
	require.NoError(t, err)
	j.SetCookies(u, []*http.Cookie{{Name: "s", Value: "v", Path: "/"}})

	require.NoError(t, j.Clear())
	assert.False(t, j.HasSession())

	restored, err := NewJar(base, m)
	require.NoError(t, err)
	assert.False(t, restored.HasSession())
}

func TestJarServerExpiryClearsStore(t *testing.T) {
	m := newTestManager(t)
	base := "http://localhost:5000"
	u, _ := url.Parse(base)

	j, err := NewJar(base, m)
	require.NoError(t, err)
	j.SetCookies(u, []*http.Cookie{{Name: "s", Value: "v", Path: "/"}})
	j.SetCookies(u, []*http.Cookie{{Name: "s", Value: "", Path: "/", MaxAge: -1}})

	data, err := m.LoadCookies()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestJarDropsCorruptState(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SaveCookies([]byte("not json")))

	j, err := NewJar("http://localhost:5000", m)
	require.NoError(t, err)
	assert.False(t, j.HasSession())

	data, err := m.LoadCookies()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestJarWithoutStore(t *testing.T) {
	j, err := NewJar("http://localhost:5000", nil)
	require.NoError(t, err)
	u, _ := url.Parse("http://localhost:5000/")
	j.SetCookies(u, []*http.Cookie{{Name: "s", Value: "v"}})
	assert.True(t, j.HasSession())
	require.NoError(t, j.Clear())
	assert.False(t, j.HasSession())
}
