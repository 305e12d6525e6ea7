// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	apperr "reactivities/cli/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug":   pterm.LogLevelDebug,
		" DEBUG ": pterm.LogLevelDebug,
		"warn":    pterm.LogLevelWarn,
		"error":   pterm.LogLevelError,
		"off":     pterm.LogLevelDisabled,
		"":        pterm.LogLevelInfo,
		"loud":    pterm.LogLevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	ctx := context.Background()

	log.InfoContext(ctx, "quiet")
	log.WarnContext(ctx, "loud", "op", "login")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

func TestFormatFailure(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	e := apperr.FromResponse(401, "NotAllowed", "")
	out := FormatFailure(e)
	for _, want := range []string{"Email not verified", "resend-email", "Server code: NotAllowed"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	if FormatFailure(nil) != "" {
		t.Error("nil error must render empty")
	}
}

func TestPresentErrorMasks(t *testing.T) {
	got := PresentError("login", apperr.New(apperr.Unknown, "password=hunter2"))
	if strings.Contains(got, "hunter2") {
		t.Errorf("secret leaked: %s", got)
	}
}
