// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credentials defines the input records of every credential operation
// and their structural validation. Whether an account exists, or a code is
// still valid, is decided by the server.
package credentials

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperr "reactivities/cli/internal/errors"
)

// Login is the email/password sign-in payload.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration creates a new account.
type Registration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required,min=2"`
}

// ChangePassword replaces the password of the signed-in user.
type ChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
}

// ForgotPassword asks the server to mail a reset code.
type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPassword completes a reset with the mailed code.
type ResetPassword struct {
	Email       string `json:"email" validate:"required,email"`
	ResetCode   string `json:"resetCode" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// EmailVerification confirms an address with the mailed code.
type EmailVerification struct {
	UserID string `json:"userId" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// ResendVerification requests another confirmation mail. Either field
// identifies the account.
type ResendVerification struct {
	Email  string `json:"email,omitempty" validate:"omitempty,email,required_without=UserID"`
	UserID string `json:"userId,omitempty" validate:"required_without=Email"`
}

// OAuthExchange carries the authorization code returned by the provider.
type OAuthExchange struct {
	Code string `json:"code" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
	})
	return validate
}

// Validate checks the structure of a payload and returns a ValidationError
// naming every offending field, or nil.
func Validate(payload any) error {
	err := instance().Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Wrap(apperr.ValidationError, "invalid payload", err)
	}
	fields := make([]string, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), describe(fe)))
	}
	sort.Strings(fields)
	return apperr.New(apperr.ValidationError, "invalid "+strings.Join(fields, ", "))
}

// jsonName reports fields by their wire name.
func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "required"
	case "email":
		return "not an email address"
	case "min":
		return "at least " + fe.Param() + " characters"
	case "nefield":
		return "must differ from the current one"
	default:
		return fe.Tag()
	}
}
