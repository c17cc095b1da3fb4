// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gatepass/cli/internal/backend"
	"gatepass/cli/internal/tokenstore"
)

// statusCmd verifies the stored session with the auth service and shows
// who is signed in. Exits non-zero when there is no valid session, so it
// can gate scripts.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show the current session status",
	Long: `The status command verifies the stored session token with the auth
service and displays the signed-in account. When the token is a JWT, the
session expiry is shown as well.

If no valid session exists the command prints a hint and exits with a
non-zero status.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		mgr, store, err := buildManager()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Checking session", spinnerFrames, 120*time.Millisecond)
		ok := mgr.Initialize(ctx)
		stopSpinner()

		if !ok {
			pterm.Println("🔒 You're not logged in")
			pterm.Println("   Run 'gatepass login' to get started.")
			return errors.New("not authenticated")
		}

		user := mgr.Current().User
		lines := fmt.Sprintf("Account: %s", user.DisplayName())
		if user.Email != "" && user.Email != user.DisplayName() {
			lines += fmt.Sprintf("\nEmail:   %s", user.Email)
		}
		if user.ID != "" {
			lines += fmt.Sprintf("\nID:      %s", user.ID)
		}
		if token, err := store.Get(tokenstore.TokenKey); err == nil {
			if exp := backend.TokenExpiry(token); !exp.IsZero() {
				lines += fmt.Sprintf("\nExpires: %s", exp.Local().Format(time.RFC1123))
			}
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Session")).
			Println(lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
