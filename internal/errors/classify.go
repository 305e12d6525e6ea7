// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	"net/http"
	"strings"
)

// discriminators maps lower-cased server tokens to kinds. The identity API
// reports sign-in results as "Failed", "NotAllowed" and "LockedOut" in the
// problem detail; the remaining spellings cover an explicit code field.
var discriminators = map[string]Kind{
	"failed":               InvalidCredentials,
	"invalidcredentials":   InvalidCredentials,
	"invalid_credentials":  InvalidCredentials,
	"notallowed":           AccountNotVerified,
	"accountnotverified":   AccountNotVerified,
	"account_not_verified": AccountNotVerified,
	"emailnotconfirmed":    AccountNotVerified,
	"lockedout":            AccountLocked,
	"accountlocked":        AccountLocked,
	"account_locked":       AccountLocked,
	"validationerror":      ValidationError,
	"validation_error":     ValidationError,
}

// Classify maps a discriminator token to its Kind. Unrecognised and empty
// tokens yield Unknown.
func Classify(discriminator string) Kind {
	token := strings.ToLower(strings.TrimSpace(discriminator))
	if token == "" {
		return Unknown
	}
	if k, ok := discriminators[token]; ok {
		return k
	}
	return Unknown
}

// FromResponse classifies a failed HTTP response. The discriminator wins; the
// status is only consulted when no token is present, and only to recognise a
// gateway that never reached the application.
func FromResponse(status int, discriminator string, message string) *E {
	kind := Classify(discriminator)
	if kind == Unknown && discriminator == "" {
		switch status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			kind = TransportError
		}
	}
	if message == "" {
		message = defaultMessage(kind)
	}
	return &E{Kind: kind, Message: message, Discriminator: discriminator, Status: status}
}

// defaultMessage returns the user-facing text for a kind.
func defaultMessage(k Kind) string {
	switch k {
	case InvalidCredentials:
		return "invalid email or password"
	case AccountNotVerified:
		return "your email has not been verified"
	case AccountLocked:
		return "your account is temporarily locked"
	case ValidationError:
		return "the request was rejected as invalid"
	case TransportError:
		return "the server could not be reached"
	default:
		return "something went wrong"
	}
}
