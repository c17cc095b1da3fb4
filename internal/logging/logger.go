// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger writing human-readable output to stderr.
// Unknown level strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
