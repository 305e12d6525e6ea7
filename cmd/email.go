// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reactivities/cli/internal/credentials"
)

var (
	verifyUserID string
	verifyCode   string

	resendEmail  string
	resendUserID string
)

// verifyEmailCmd confirms an address with the code from the verification mail.
var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email",
	Short: "Confirm your email address with the code from the verification email",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		out := a.coord.VerifyEmail(cmd.Context(), credentials.EmailVerification{UserID: verifyUserID, Code: verifyCode})
		if !out.OK() {
			return a.report("verifying your email", out.Err)
		}
		pterm.Success.Println("Email verified - you can now login")
		return nil
	},
}

// resendEmailCmd asks for another verification mail.
var resendEmailCmd = &cobra.Command{
	Use:   "resend-email",
	Short: "Send the verification email again",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		out := a.coord.ResendVerification(cmd.Context(), credentials.ResendVerification{Email: resendEmail, UserID: resendUserID})
		if !out.OK() {
			pterm.Error.Println(string(out.Signal))
			return a.report("resending the verification email", out.Err)
		}
		pterm.Success.Println(string(out.Signal))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyEmailCmd, resendEmailCmd)
	verifyEmailCmd.Flags().StringVar(&verifyUserID, "user-id", "", "User id from the verification link")
	verifyEmailCmd.Flags().StringVar(&verifyCode, "code", "", "Code from the verification link")
	resendEmailCmd.Flags().StringVar(&resendEmail, "email", "", "Account email")
	resendEmailCmd.Flags().StringVar(&resendUserID, "user-id", "", "User id, when the email is not known")
}
