// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// parseBearerToken extracts the token from a value like "Bearer <token>",
// case-insensitively. Returns empty string for anything else.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	if strings.EqualFold(v[0:6], "bearer") {
		rest := strings.TrimSpace(v[6:])
		if rest != "" {
			return rest
		}
	}
	return ""
}

// findBearerTokenInHeaders scans response headers for a rotated bearer
// token, preferring the Authorization header.
func findBearerTokenInHeaders(h http.Header) string {
	if t := parseBearerToken(h.Get("Authorization")); t != "" {
		return t
	}
	for k, vals := range h {
		if !strings.EqualFold(k, "authorization") {
			continue
		}
		for _, v := range vals {
			if t := parseBearerToken(v); t != "" {
				return t
			}
		}
	}
	return ""
}

// TokenExpiry returns the expiry time of a JWT session token without
// verifying its signature. Tokens that are not JWTs, or carry no exp
// claim, yield the zero time. Display-only; never used for auth decisions.
func TokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
