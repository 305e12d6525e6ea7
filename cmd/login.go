// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reactivities/cli/internal/auth"
	"reactivities/cli/internal/credentials"
	"reactivities/cli/internal/terminal"
)

var (
	loginEmail  string
	loginFrom   string
	loginResend bool
)

// loginCmd signs in with email and password.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `The login command signs you in with your email and password. The session
cookie returned by the server is kept in the OS keychain, so later commands
stay signed in.

If your email address has not been verified yet, login offers to send the
verification email again (or does so directly with --resend).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		email := loginEmail
		if email == "" {
			if email, err = terminal.ReadLine(a.in, "Email: ", a.out); err != nil {
				return err
			}
		}
		password, err := terminal.ReadSecret(a.in, "Password: ", a.out)
		if err != nil {
			return err
		}

		form := a.coord.NewLoginForm()
		out := form.Submit(ctx, credentials.Login{Email: email, Password: password}, auth.Route(loginFrom))
		if out.OK() {
			a.greetCurrentUser(ctx)
			a.showRoute(out.Route)
			return nil
		}
		if !form.NotVerified() {
			return a.report("signing in", out.Err)
		}

		pterm.Warning.Println("Your email address has not been verified yet.")
		if !loginResend && !(terminal.Interactive() && terminal.Confirm(a.in, "Send the verification email again?", a.out)) {
			pterm.Println("Run 'reactivities resend-email --email " + form.Email() + "' to get a new link.")
			return errReported
		}
		resent := form.ResendEmail(ctx)
		if !resent.OK() {
			pterm.Error.Println(string(resent.Signal))
			return a.report("resending the verification email", resent.Err)
		}
		pterm.Success.Println(string(resent.Signal))
		return errReported
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when empty)")
	loginCmd.Flags().StringVar(&loginFrom, "from", "", "Route to continue to after signing in")
	loginCmd.Flags().BoolVar(&loginResend, "resend", false, "Resend the verification email without asking if the account is not verified")
}
