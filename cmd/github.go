// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reactivities/cli/internal/auth"
	"reactivities/cli/internal/terminal"
)

var (
	githubCode      string
	githubNoBrowser bool
)

// githubLoginCmd signs in through GitHub. The browser is sent to GitHub's
// authorization page once; the code GitHub hands back to the redirect URL is
// then exchanged for a session.
var githubLoginCmd = &cobra.Command{
	Use:   "github-login",
	Short: "Sign in with GitHub",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		code := githubCode
		if code == "" {
			authURL, err := auth.AuthorizeURL(auth.OAuthApp{
				ClientID:     a.cfg.GitHub.ClientID,
				RedirectURL:  a.cfg.GitHub.RedirectURL,
				AuthorizeURL: a.cfg.GitHub.AuthorizeURL,
				Scopes:       a.cfg.GitHub.Scopes,
			})
			if err != nil {
				pterm.Error.Println(err.Error())
				pterm.Println("Set github.client_id in the config file or REACTIVITIES_GITHUB_CLIENT_ID.")
				return errReported
			}
			pterm.Println("Open this link to sign in with GitHub:")
			pterm.Printf("%s\n\n", authURL)
			if !githubNoBrowser {
				openBrowser(authURL)
			}

			const prompt = "Paste the code from the redirect URL: "
			code, err = terminal.ReadLine(a.in, prompt, a.out)
			if err != nil {
				return err
			}
			if terminal.OutputIsTerminal() {
				terminal.ClearPreviousLines(a.out, len(prompt)+len(code))
			}
		}

		out := a.coord.ExchangeOAuthCode(ctx, code, "")
		if !out.OK() {
			return a.report("signing in with GitHub", out.Err)
		}
		a.greetCurrentUser(ctx)
		a.showRoute(out.Route)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(githubLoginCmd)
	githubLoginCmd.Flags().StringVar(&githubCode, "code", "", "Authorization code already obtained from GitHub")
	githubLoginCmd.Flags().BoolVar(&githubNoBrowser, "no-browser", false, "Print the link without opening a browser")
}
