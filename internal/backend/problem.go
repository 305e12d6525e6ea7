// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"sort"
	"strings"

	apperr "reactivities/cli/internal/errors"
)

// problem is the RFC 7807 body ASP.NET returns, plus an explicit code field.
type problem struct {
	Code    string              `json:"code"`
	Title   string              `json:"title"`
	Detail  string              `json:"detail"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// parseProblem turns a non-2xx response into a classified error. The
// discriminator is taken from code, then detail, then title; a non-empty
// errors map marks the response as a validation failure.
func parseProblem(status int, contentType string, body []byte) *apperr.E {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return apperr.FromResponse(status, "", "")
	}

	var p problem
	if strings.HasPrefix(text, "{") && json.Unmarshal(body, &p) == nil {
		discriminator := p.Code
		switch {
		case discriminator != "":
		case isToken(p.Detail):
			discriminator = p.Detail
		case len(p.Errors) > 0:
			discriminator = string(apperr.ValidationError)
		case isToken(p.Title):
			discriminator = p.Title
		}
		return apperr.FromResponse(status, discriminator, problemMessage(p))
	}

	if strings.HasPrefix(text, "[") {
		// identity errors are sometimes returned as a bare array
		var list []struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		}
		if json.Unmarshal(body, &list) == nil && len(list) > 0 {
			msgs := make([]string, 0, len(list))
			for _, item := range list {
				msgs = append(msgs, item.Description)
			}
			return apperr.FromResponse(status, string(apperr.ValidationError), strings.Join(msgs, "; "))
		}
	}

	if isToken(text) && !strings.Contains(contentType, "html") {
		return apperr.FromResponse(status, text, "")
	}
	if strings.Contains(contentType, "html") {
		return apperr.FromResponse(status, "", "")
	}
	return apperr.FromResponse(status, "", text)
}

// isToken reports whether s looks like a single machine token such as
// "NotAllowed" rather than a sentence.
func isToken(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	return !strings.ContainsAny(s, " \t\n.,:")
}

func problemMessage(p problem) string {
	if len(p.Errors) > 0 {
		fields := make([]string, 0, len(p.Errors))
		for f := range p.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		var msgs []string
		for _, f := range fields {
			msgs = append(msgs, p.Errors[f]...)
		}
		return strings.Join(msgs, "; ")
	}
	for _, s := range []string{p.Message, p.Detail, p.Title} {
		if s != "" && !isToken(s) {
			return s
		}
	}
	return ""
}
