// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors recognises transport-level HTTP failures and renders them
// for the terminal.
package httperrors

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Cause is the coarse reason a request never produced a response.
type Cause int

const (
	CauseNone Cause = iota
	CauseTimeout
	CauseDNS
	CauseRefused
	CauseTLS
	CauseOther
)

// Detect reports why err prevented a response. CauseNone means err is nil or
// is not a transport failure (for example a caller cancellation).
func Detect(err error) Cause {
	if err == nil || errors.Is(err, context.Canceled) {
		return CauseNone
	}
	switch {
	case isTimeoutError(err):
		return CauseTimeout
	case isDNSError(err):
		return CauseDNS
	case isConnectionRefusedError(err):
		return CauseRefused
	case isSSLError(err):
		return CauseTLS
	}
	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) {
		return CauseOther
	}
	return CauseNone
}

// IsTransport reports whether err means the server was never reached.
func IsTransport(err error) bool {
	return Detect(err) != CauseNone
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

// Present prints a short explanation of a transport failure while doing
// action against host. It prints nothing for CauseNone.
func Present(err error, action, host string) {
	switch Detect(err) {
	case CauseTimeout:
		pterm.Warning.Printf("Connection timeout while %s\n", action)
		pterm.Println("The server took too long to respond. Please try again in a few moments.")
	case CauseDNS:
		pterm.Warning.Printf("Cannot resolve %s while %s\n", host, action)
		pterm.Println("Check your internet connection and DNS settings.")
	case CauseRefused:
		pterm.Warning.Printf("Connection refused by %s while %s\n", host, action)
		pterm.Println("The API is not accepting connections. Is it running on the configured base URL?")
	case CauseTLS:
		pterm.Warning.Printf("Secure connection to %s failed while %s\n", host, action)
		pterm.Println("For a local development API, trust its certificate or use plain http.")
	case CauseOther:
		pterm.Warning.Printf("Cannot reach %s while %s\n", host, action)
	default:
		return
	}
	if msg := err.Error(); msg != "" {
		short := msg
		if len(short) > 100 {
			short = short[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", short)
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
