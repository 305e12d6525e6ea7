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
	forgotEmail string
	resetEmail  string
	resetCode   string
)

// changePasswordCmd replaces the password of the signed-in user.
var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the password of the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		current, err := terminal.ReadSecret(a.in, "Current password: ", a.out)
		if err != nil {
			return err
		}
		next, err := terminal.ReadSecret(a.in, "New password: ", a.out)
		if err != nil {
			return err
		}
		out := a.coord.ChangePassword(cmd.Context(), credentials.ChangePassword{CurrentPassword: current, NewPassword: next})
		if !out.OK() {
			return a.report("changing your password", out.Err)
		}
		pterm.Success.Println("Password changed")
		return nil
	},
}

// forgotPasswordCmd mails a reset code.
var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Email a password reset code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		email := forgotEmail
		if email == "" {
			if email, err = terminal.ReadLine(a.in, "Email: ", a.out); err != nil {
				return err
			}
		}
		out := a.coord.ForgotPassword(cmd.Context(), credentials.ForgotPassword{Email: email})
		if !out.OK() {
			return a.report("requesting a reset code", out.Err)
		}
		pterm.Success.Println("Please check your email to reset your password")
		return nil
	},
}

// resetPasswordCmd sets a new password using the mailed reset code.
var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using the emailed reset code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		code := resetCode
		if code == "" {
			if code, err = terminal.ReadSecret(a.in, "Reset code: ", a.out); err != nil {
				return err
			}
		}
		next, err := terminal.ReadSecret(a.in, "New password: ", a.out)
		if err != nil {
			return err
		}
		out := a.coord.ResetPassword(cmd.Context(), credentials.ResetPassword{Email: resetEmail, ResetCode: code, NewPassword: next})
		if !out.OK() {
			return a.report("resetting your password", out.Err)
		}
		pterm.Success.Println("Password reset - you can now login")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changePasswordCmd, forgotPasswordCmd, resetPasswordCmd)
	forgotPasswordCmd.Flags().StringVar(&forgotEmail, "email", "", "Account email")
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "Account email")
	resetPasswordCmd.Flags().StringVar(&resetCode, "code", "", "Reset code from the email (prompted when empty)")
}
