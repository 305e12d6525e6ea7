// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Reactivities CLI.
// It implements account subcommands (login, register, logout, email
// verification and password lifecycle) plus a few read commands over the
// signed-in session, using the Cobra CLI framework.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reactivities/cli/internal/logging"
)

var (
	verbose     bool
	baseURLFlag string
)

// errReported marks a failure that has already been shown to the user.
var errReported = errors.New("command failed")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "reactivities",
	Short:         "Reactivities account CLI",
	Long:          `reactivities signs you in to a Reactivities server and manages your account from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, logging.PresentError("reactivities", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API base URL (overrides config and REACTIVITIES_BASE_URL)")
}
