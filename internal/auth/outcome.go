// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	apperr "reactivities/cli/internal/errors"
)

// Route is a navigation hint handed back with an outcome. The empty Route
// means "stay where you are".
type Route string

// Signal is a short user-facing notice some operations raise.
type Signal string

const (
	SignalEmailSent  Signal = "Email sent - please check your email"
	SignalCheckEmail Signal = "Problem sending email - please check email address"
)

// Outcome is the result of one coordinator operation: either Err is nil and
// Value holds the success payload, or Err carries the classified failure.
type Outcome[T any] struct {
	Value T
	Err   *apperr.E
	// Route is where the UI should go next. Set only on success.
	Route  Route
	Signal Signal
	// Remote reports a server failure that did not fail the operation, as
	// with logout.
	Remote *apperr.E
}

// OK reports whether the operation succeeded.
func (o Outcome[T]) OK() bool { return o.Err == nil }

// Kind is the failure kind, or "" on success.
func (o Outcome[T]) Kind() apperr.Kind {
	if o.Err == nil {
		return ""
	}
	return o.Err.Kind
}

// AsError returns Err as an error, nil on success. A nil *E must not be
// returned through the error interface directly.
func (o Outcome[T]) AsError() error {
	if o.Err == nil {
		return nil
	}
	return o.Err
}

// Done is the value of operations that return nothing on success.
type Done struct{}
