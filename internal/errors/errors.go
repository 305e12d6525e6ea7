// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines the closed set of failure kinds a credential operation
// can end in, and the classifier that maps server discriminators onto them.
//
// Every failure that leaves the backend layer is an *E. Callers branch on Kind
// (via KindOf or errors.As), never on message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable failure category.
type Kind string

const (
	// InvalidCredentials means the server rejected the email/password pair.
	InvalidCredentials Kind = "invalid_credentials"
	// AccountNotVerified means the account exists but its email is unconfirmed.
	AccountNotVerified Kind = "account_not_verified"
	// AccountLocked means the server locked the account after failed attempts.
	AccountLocked Kind = "account_locked"
	// ValidationError means the payload was malformed, locally or server-side.
	ValidationError Kind = "validation_error"
	// TransportError means the server could not be reached or did not answer.
	TransportError Kind = "transport_error"
	// Unknown is the fallback for anything the classifier does not recognise.
	Unknown Kind = "unknown"
)

// Kinds lists every Kind in a stable order.
var Kinds = []Kind{InvalidCredentials, AccountNotVerified, AccountLocked, ValidationError, TransportError, Unknown}

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind Kind
	// Message is safe to show to the user.
	Message string
	// Discriminator is the raw server token that produced Kind, if any.
	Discriminator string
	// Status is the HTTP status of the response, 0 when no response arrived.
	Status int
	Err    error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is matches another *E by Kind so that errors.Is(err, errors.New(kind, ""))
// works as a kind test.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind carried by err, Unknown for foreign errors and the
// empty Kind for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Normalize guarantees an *E. Foreign errors are wrapped as Unknown; callers
// that can tell a transport failure apart should wrap it before this point.
func Normalize(err error) *E {
	if err == nil {
		return nil
	}
	var e *E
	if stderrors.As(err, &e) {
		return e
	}
	return Wrap(Unknown, "unexpected failure", err)
}
