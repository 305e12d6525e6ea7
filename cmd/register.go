// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reactivities/cli/internal/credentials"
	"reactivities/cli/internal/terminal"
)

var (
	registerEmail       string
	registerDisplayName string
)

// registerCmd creates an account. The new account must verify its email
// before it can sign in.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		email, name := registerEmail, registerDisplayName
		if email == "" {
			if email, err = terminal.ReadLine(a.in, "Email: ", a.out); err != nil {
				return err
			}
		}
		if name == "" {
			if name, err = terminal.ReadLine(a.in, "Display name: ", a.out); err != nil {
				return err
			}
		}
		password, err := terminal.ReadSecret(a.in, "Password: ", a.out)
		if err != nil {
			return err
		}

		out := a.coord.Register(cmd.Context(), credentials.Registration{Email: email, Password: password, DisplayName: name})
		if !out.OK() {
			return a.report("registering", out.Err)
		}
		pterm.Success.Println("Registration successful - please check your email")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerDisplayName, "display-name", "", "Name shown to other users")
}
