// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the gatepass CLI.
// It implements the login, logout, and status subcommands using the Cobra
// framework and wires the session manager to its HTTP backend, the OS
// keyring token store, and the CLI configuration.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gatepass/cli/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "gatepass",
	Short:         "Gatepass CLI for managing your auth service session",
	Long:          `Gatepass is a command-line client for a session-based auth service. It signs in with your credentials, keeps the session token in the OS keyring, and reports the current authentication status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("gatepass %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Errors are masked before printing so
// a failure can never leak a credential into the terminal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("gatepass", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
