// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's structured logger, secret masking for
// anything that may echo user input, and the terminal presentation of
// classified failures.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)((?:current|new)?password=)([^\s;&]+)`)
	reJSONPass = regexp.MustCompile(`(?i)("(?:current|new)?password"\s*:\s*")([^"]*)(")`)
	reCode     = regexp.MustCompile(`(?i)((?:reset)?code=)([^\s;&]+)`)
	reJSONCode = regexp.MustCompile(`(?i)("(?:reset)?code"\s*:\s*")([^"]*)(")`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reCookie   = regexp.MustCompile(`(?i)((?:set-)?cookie:\s*[^=\s]+=)([^;\s]+)`)
	reAspNet   = regexp.MustCompile(`(\.AspNetCore\.[A-Za-z.]+=)([^;\s]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONPass.ReplaceAllString(out, "$1***$3")
	out = reCode.ReplaceAllString(out, "$1***")
	out = reJSONCode.ReplaceAllString(out, "$1***$3")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reCookie.ReplaceAllString(out, "$1***")
	out = reAspNet.ReplaceAllString(out, "$1***")
	return out
}
