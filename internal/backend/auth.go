// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"gatepass/cli/internal/logging"
)

// sessionResponse is the shape both auth endpoints reply with.
type sessionResponse struct {
	User  map[string]any `json:"user"`
	Token string         `json:"token"`
}

// Login posts credentials to /auth/login.
// On success it returns the authenticated user and the issued session token.
// Non-2xx responses become an *APIError carrying the server's message.
func (h *HTTP) Login(ctx context.Context, email, password string) (*User, string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug().Str("op", "login").Msg(logging.Mask(err.Error()))
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		h.log.Debug().Str("op", "login").Int("status", resp.StatusCode).Msg("login rejected")
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(b)}
	}

	return h.parseSession(resp)
}

// CheckToken calls GET /auth/check-token with the bearer credential.
// On success it returns the refreshed user and the possibly rotated token.
func (h *HTTP) CheckToken(ctx context.Context, token string) (*User, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+checkTokenPath, nil)
	if err != nil {
		return nil, "", err
	}
	h.setStandardHeaders(req)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug().Str("op", "check-token").Msg(logging.Mask(err.Error()))
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		msg := decodeErrorMessage(b)
		if msg == "" && resp.StatusCode == http.StatusUnauthorized {
			msg = "unauthorized"
		}
		h.log.Debug().Str("op", "check-token").Int("status", resp.StatusCode).Msg("token rejected")
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return h.parseSession(resp)
}

// parseSession decodes a {user, token} payload. A rotated token may also
// arrive via the response Authorization header; the body wins when both
// are present.
func (h *HTTP) parseSession(resp *http.Response) (*User, string, error) {
	var out sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, "", err
	}

	token := out.Token
	if token == "" {
		token = findBearerTokenInHeaders(resp.Header)
	}
	if token == "" {
		return nil, "", errors.New("no session token in response")
	}

	user := newUserFromRaw(out.User)
	if user == nil {
		return nil, "", errors.New("no user in response")
	}
	return user, token, nil
}
