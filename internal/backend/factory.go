// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import "github.com/rs/zerolog"

// New creates the API implementation for the given auth service base URL.
func New(baseURL string, log zerolog.Logger) API {
	return newHTTP(baseURL, log)
}
