// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides structured logging and secret masking for the CLI.
// It ensures that passwords and bearer tokens never reach log output or
// error messages shown to users.
package logging

import (
	"regexp"
)

var (
	rePasswordPair = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	rePasswordJSON = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]*)(")`)
	reBearer       = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reTokenJSON    = regexp.MustCompile(`(?i)("token"\s*:\s*")([^"]*)(")`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers password=... pairs, Authorization bearer values, and the
// "password"/"token" fields of JSON payloads.
func Mask(s string) string {
	out := s
	out = rePasswordPair.ReplaceAllString(out, "$1***")
	out = rePasswordJSON.ReplaceAllString(out, "$1***$3")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reTokenJSON.ReplaceAllString(out, "$1***$3")
	return out
}
