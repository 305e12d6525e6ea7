// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"

	apperr "reactivities/cli/internal/errors"
)

// FormatFailure renders a classified failure for the terminal: a title, the
// server's message, and what the user can do next.
func FormatFailure(err error) string {
	if err == nil {
		return ""
	}
	e := apperr.Normalize(err)

	var b strings.Builder
	b.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title(e.Kind)))
	b.WriteString("\n")
	if e.Message != "" {
		b.WriteString(Mask(e.Message))
		b.WriteString("\n")
	}
	if hint := hint(e.Kind); hint != "" {
		b.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ " + hint))
		b.WriteString("\n")
	}
	if e.Discriminator != "" {
		b.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Server code: " + e.Discriminator))
		b.WriteString("\n")
	}
	return b.String()
}

func title(k apperr.Kind) string {
	switch k {
	case apperr.InvalidCredentials:
		return "Sign-in failed"
	case apperr.AccountNotVerified:
		return "Email not verified"
	case apperr.AccountLocked:
		return "Account locked"
	case apperr.ValidationError:
		return "Invalid input"
	case apperr.TransportError:
		return "Server unreachable"
	default:
		return "Request failed"
	}
}

func hint(k apperr.Kind) string {
	switch k {
	case apperr.InvalidCredentials:
		return "Check your email and password, or run 'reactivities forgot-password'"
	case apperr.AccountNotVerified:
		return "Run 'reactivities resend-email' to get a new verification link"
	case apperr.AccountLocked:
		return "Wait a few minutes before trying again"
	case apperr.TransportError:
		return "Check your connection and the configured base URL"
	default:
		return ""
	}
}
