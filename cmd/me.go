// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var meOutput string

// meCmd displays the signed-in user.
var meCmd = &cobra.Command{
	Use:     "me",
	Aliases: []string{"whoami"},
	Short:   "Show the signed-in user",
	Long: `The me command asks the server who the saved session belongs to and prints
the profile. If no valid session exists, it tells you that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(meOutput); err != nil {
			return err
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		stop := startLoadingArea("Loading your profile", a.coord.Session().Loading)
		u, err := a.coord.CurrentUser(cmd.Context())
		stop()
		if err != nil {
			return a.reportErr("loading your profile", err)
		}
		if u == nil && meOutput == formatText {
			printNotLoggedIn()
			return nil
		}
		return writeUser(a.out, meOutput, u)
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
	meCmd.Flags().StringVarP(&meOutput, "output", "o", formatText, "Output format: text, json or yaml")
}
