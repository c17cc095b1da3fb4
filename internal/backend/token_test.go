package backend

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Bearer tok1", "tok1"},
		{"lowercase scheme", "bearer tok1", "tok1"},
		{"extra spaces", "Bearer   tok1 ", "tok1"},
		{"no scheme", "tok1", ""},
		{"scheme only", "Bearer ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBearerToken(tt.input))
		})
	}
}

func TestFindBearerTokenInHeaders(t *testing.T) {
	h := http.Header{}
	assert.Empty(t, findBearerTokenInHeaders(h))

	h.Set("Authorization", "Bearer tok9")
	assert.Equal(t, "tok9", findBearerTokenInHeaders(h))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got := TokenExpiry(signed)
	require.True(t, got.Equal(exp), "expiry %v, want %v", got, exp)
}

func TestTokenExpiryNonJWT(t *testing.T) {
	assert.True(t, TokenExpiry("opaque-token").IsZero())
	assert.True(t, TokenExpiry("").IsZero())
}

func TestTokenExpiryNoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	assert.True(t, TokenExpiry(signed).IsZero())
}
