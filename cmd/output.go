// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"reactivities/cli/internal/backend"
	"reactivities/cli/internal/session"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", f)
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// writeUser prints the profile. A nil user is written as null in the
// structured formats.
func writeUser(w io.Writer, format string, u *session.User) error {
	if format != formatText {
		return encode(w, format, u)
	}
	fmt.Fprintf(w, "👤 Current user: %s\n", u.DisplayName)
	fmt.Fprintf(w, "   Email: %s\n", u.Email)
	fmt.Fprintf(w, "   ID:    %s\n", u.ID)
	if len(u.Roles) > 0 {
		fmt.Fprintf(w, "   Roles: %s\n", strings.Join(u.Roles, ", "))
	}
	return nil
}

// writeActivities prints the list as a table or in a structured format.
func writeActivities(w io.Writer, format string, list []backend.Activity) error {
	if format != formatText {
		return encode(w, format, list)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No activities yet.")
		return nil
	}
	data := pterm.TableData{{"Date", "Title", "Category", "Where", "Host"}}
	for _, act := range list {
		title := act.Title
		if act.IsCancelled {
			title += " (cancelled)"
		}
		where := act.Venue
		if act.City != "" {
			where = strings.TrimPrefix(where+", "+act.City, ", ")
		}
		data = append(data, []string{act.Date.Local().Format("2006-01-02 15:04"), title, act.Category, where, act.HostDisplayName})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
