// Package main is the entry point for the gatepass CLI application.
// It provides session management against a remote auth service.
package main

import (
	"gatepass/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
