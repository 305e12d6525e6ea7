// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"reactivities/cli/internal/backend"
	"reactivities/cli/internal/session"
)

var bob = &session.User{ID: "1", DisplayName: "Bob", Email: "bob@test.com", Roles: []string{"admin"}}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, checkFormat(f))
	}
	assert.Error(t, checkFormat("xml"))
}

func TestWriteUserFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeUser(&buf, formatText, bob))
	assert.Contains(t, buf.String(), "Current user: Bob")
	assert.Contains(t, buf.String(), "Roles: admin")

	buf.Reset()
	require.NoError(t, writeUser(&buf, formatJSON, bob))
	var fromJSON session.User
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *bob, fromJSON)

	buf.Reset()
	require.NoError(t, writeUser(&buf, formatYAML, bob))
	assert.Contains(t, buf.String(), "displayName: Bob")
	var fromYAML session.User
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *bob, fromYAML)

	buf.Reset()
	require.NoError(t, writeUser(&buf, formatJSON, nil))
	assert.Equal(t, "null", strings.TrimSpace(buf.String()))
}

func TestWriteActivitiesTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	list := []backend.Activity{
		{ID: "a1", Title: "Drinks", Date: time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC), Category: "drinks", City: "London", Venue: "Pub", HostDisplayName: "Bob"},
		{ID: "a2", Title: "Film", IsCancelled: true},
	}
	var buf bytes.Buffer
	require.NoError(t, writeActivities(&buf, formatText, list))
	out := buf.String()
	assert.Contains(t, out, "Drinks")
	assert.Contains(t, out, "Pub, London")
	assert.Contains(t, out, "Film (cancelled)")

	buf.Reset()
	require.NoError(t, writeActivities(&buf, formatText, nil))
	assert.Contains(t, buf.String(), "No activities yet.")
}

func TestGreetingUsesName(t *testing.T) {
	assert.Contains(t, greeting(bob), "Bob")
	assert.Contains(t, greeting(&session.User{Email: "x@y.z"}), "x@y.z")
}
