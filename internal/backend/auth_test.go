package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTP {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newHTTP(srv.URL, zerolog.Nop())
}

func TestLoginSuccess(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1,"name":"A"},"token":"tok1"}`))
	})

	user, token, err := h.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", gotBody["email"])
	require.Equal(t, "secret", gotBody["password"])
	require.NotEmpty(t, gotRequestID)

	require.Equal(t, "tok1", token)
	require.Equal(t, "1", user.ID)
	require.Equal(t, "A", user.Name)
	require.Equal(t, "A", user.DisplayName())
}

func TestLoginServerMessage(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	user, token, err := h.Login(context.Background(), "a@b.com", "wrong")
	require.Nil(t, user)
	require.Empty(t, token)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid credentials", apiErr.Message)
	require.Equal(t, "invalid credentials", apiErr.Error())
}

func TestLoginPlainTextError(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	_, _, err := h.Login(context.Background(), "a@b.com", "secret")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestLoginEmptyErrorBody(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := h.Login(context.Background(), "a@b.com", "secret")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Empty(t, apiErr.Message)
	require.Equal(t, "auth service returned status 500", apiErr.Error())
}

func TestCheckTokenSendsBearer(t *testing.T) {
	var gotAuth string
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/check-token", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u-7","email":"a@b.com"},"token":"tok2"}`))
	})

	user, token, err := h.CheckToken(context.Background(), "tok1")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok1", gotAuth)
	require.Equal(t, "tok2", token)
	require.Equal(t, "u-7", user.ID)
	require.Equal(t, "a@b.com", user.Email)
}

func TestCheckTokenRotationViaHeader(t *testing.T) {
	// Some deployments return the rotated token in the Authorization
	// response header instead of the body.
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer rotated")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":2}}`))
	})

	_, token, err := h.CheckToken(context.Background(), "tok1")
	require.NoError(t, err)
	require.Equal(t, "rotated", token)
}

func TestCheckTokenUnauthorized(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, _, err := h.CheckToken(context.Background(), "expired")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "unauthorized", apiErr.Message)
}

func TestCheckTokenMissingToken(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":2}}`))
	})

	_, _, err := h.CheckToken(context.Background(), "tok1")
	require.EqualError(t, err, "no session token in response")
}
