// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd signs out. The local session is always cleared, even when the
// server cannot be reached.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the saved session",
	Long: `The logout command tells the server to end your session and removes the
session cookie from the OS keychain. The local session is cleared even when the
server cannot be reached, so you are never left looking signed in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		out := a.coord.Logout(cmd.Context())
		if out.Remote != nil {
			pterm.Warning.Println("The server could not be notified; you have been signed out on this device.")
		}
		pterm.Success.Println("Logged out")
		a.showRoute(out.Route)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
