// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the remote gatepass auth service.
// It defines the API contract for credential login and token verification,
// plus the HTTP implementation used by the CLI.
package backend

import "context"

// API defines the auth service operations the session manager depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Login exchanges credentials for the authenticated user and a
	// session token. Credential validation is the server's job.
	Login(ctx context.Context, email, password string) (*User, string, error)
	// CheckToken verifies a bearer token and returns the refreshed user
	// together with the (possibly rotated) token.
	CheckToken(ctx context.Context, token string) (*User, string, error)
}

// User describes the authenticated principal. The server owns the schema;
// the common display fields are lifted out and the full payload is kept
// in Raw so nothing the server sends is lost.
type User struct {
	ID    string
	Name  string
	Email string
	Raw   map[string]any
}

// newUserFromRaw builds a User from a decoded JSON object.
// ID may arrive as a string or a number; both are normalized to string.
func newUserFromRaw(raw map[string]any) *User {
	if raw == nil {
		return nil
	}
	u := &User{Raw: raw}
	switch v := raw["id"].(type) {
	case string:
		u.ID = v
	case float64:
		u.ID = trimFloat(v)
	}
	if v, ok := raw["name"].(string); ok {
		u.Name = v
	}
	if v, ok := raw["email"].(string); ok {
		u.Email = v
	}
	return u
}

// DisplayName returns the best available identifier for user-facing output.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	case u.ID != "":
		return u.ID
	default:
		return "user"
	}
}
