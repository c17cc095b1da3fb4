// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Endpoint paths on the auth service. The base URL comes from config.
const (
	loginPath      = "/auth/login"
	checkTokenPath = "/auth/check-token"
)

// HTTP implements API over the auth service's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g. "https://api.gatepass.dev")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	log    zerolog.Logger
}

// newHTTP creates a client for the given base URL with a 10-second timeout.
func newHTTP(baseURL string, log zerolog.Logger) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// setStandardHeaders applies headers common to every request,
// including a fresh request ID for server-side correlation.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", "gatepass-cli")
	req.Header.Set("X-Request-Id", uuid.NewString())
}

// APIError is a non-2xx response from the auth service. Message carries
// the server-provided text when the error payload contains one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("auth service returned status %d", e.StatusCode)
}

// decodeErrorMessage extracts a human-readable message from an error
// response body. JSON payloads are checked for the common message fields;
// anything else is used verbatim when short enough.
func decodeErrorMessage(body []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := raw[key].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	s := strings.TrimSpace(string(body))
	if s != "" && len(s) <= 200 {
		return s
	}
	return ""
}

// trimFloat renders a JSON number without a spurious fraction part.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
