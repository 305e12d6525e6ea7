// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var activitiesOutput string

// activitiesCmd lists the activities visible to the signed-in user.
var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(activitiesOutput); err != nil {
			return err
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		u, err := a.coord.CurrentUser(ctx)
		if err != nil {
			return a.reportErr("loading your profile", err)
		}
		if u == nil {
			printNotLoggedIn()
			return errReported
		}

		stop := startLoadingArea("Loading activities", func() bool { return true })
		list, err := a.coord.Activities(ctx)
		stop()
		if err != nil {
			return a.reportErr("loading activities", err)
		}
		return writeActivities(a.out, activitiesOutput, list)
	},
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
	activitiesCmd.Flags().StringVarP(&activitiesOutput, "output", "o", formatText, "Output format: text, json or yaml")
}
