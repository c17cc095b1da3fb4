// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the local session: the token is removed from the OS
// keyring and the session state drops to not authenticated. No network
// call is made; the server-side session expires on its own.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session token",
	Long: `The logout command removes the session token from the OS keyring and
clears the local session state. It is safe to run repeatedly and works
offline; no request is sent to the auth service.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := buildManager()
		if err != nil {
			return err
		}

		mgr.Logout()
		pterm.Println("✅ Logged out. The stored session token has been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
