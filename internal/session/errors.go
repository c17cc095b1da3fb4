// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"errors"

	"gatepass/cli/internal/backend"
)

// genericLoginMessage is shown when the server provided no message
// (e.g. a transport failure before any response arrived).
const genericLoginMessage = "authentication failed"

// AuthError is a failed login. Message carries the server's error text
// verbatim when the server sent one, for direct display to the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// newAuthError wraps a backend failure, lifting the server message out
// of the API error when present.
func newAuthError(err error) *AuthError {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &AuthError{Message: apiErr.Message, Err: err}
	}
	return &AuthError{Message: genericLoginMessage, Err: err}
}
