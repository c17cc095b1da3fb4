// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gatepass/cli/internal/backend"
	"gatepass/cli/internal/httperrors"
	"gatepass/cli/internal/session"
	"gatepass/cli/internal/terminal"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// loginCmd signs in with email and password. On success the session
// token is stored in the OS keyring and subsequent commands run
// authenticated until the session expires or `gatepass logout` is run.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the auth service",
	Long: `The login command prompts for your email and password and exchanges them
for a session with the auth service. The issued session token is stored
securely in the OS keyring; your password is never persisted.

If a valid session already exists, the command short-circuits without
asking for credentials.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		mgr, _, err := buildManager()
		if err != nil {
			return err
		}

		// If the persisted token still verifies, skip the prompt.
		if mgr.Initialize(ctx) {
			fmt.Printf("Already logged in as %s\n", mgr.Current().User.DisplayName())
			return nil
		}

		email, password, err := promptCredentials()
		if err != nil {
			return err
		}

		cursor.Hide()
		defer cursor.Show()
		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)

		ok, err := mgr.Login(ctx, email, password)
		stopSpinner()
		if err != nil {
			var authErr *session.AuthError
			var apiErr *backend.APIError
			if errors.As(err, &authErr) && errors.As(err, &apiErr) {
				// The server rejected the credentials; show its message.
				pterm.Error.Println(authErr.Message)
				return authErr
			}
			return httperrors.FormatNetworkError(err, "signing in")
		}
		if !ok {
			return errors.New("login did not complete")
		}

		pterm.Success.Printf("Welcome, %s!\n", mgr.Current().User.DisplayName())
		return nil
	},
}

// promptCredentials reads the email from stdin and the password from the
// terminal without echo. The password prompt is scrubbed from the screen
// once the secret has been read.
func promptCredentials() (string, string, error) {
	fmt.Print("Email: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", "", err
	}
	email := strings.TrimSpace(line)

	const prompt = "Password: "
	fmt.Print(prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", err
	}
	terminal.ClearPreviousLines(len(prompt))

	return email, string(pw), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
