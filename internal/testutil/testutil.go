// Package testutil holds helpers shared by handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sharebook/internal/platform/crypto"
)

// Envelope mirrors the JSON body written by the httpx response helpers.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// AccessToken signs a short lived access token for userID.
func AccessToken(t testing.TB, secret, userID string) string {
	t.Helper()
	token, _, err := crypto.GenerateToken(secret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

// ExpiredToken signs an access token that expired an hour ago.
func ExpiredToken(t testing.TB, secret, userID string) string {
	t.Helper()
	token, _, err := crypto.GenerateToken(secret, userID, -time.Hour)
	require.NoError(t, err)
	return token
}

// NewRequest builds a request with body encoded as JSON. A nil body sends
// no payload.
func NewRequest(t testing.TB, method, path string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest(method, path, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth is NewRequest plus a bearer token.
func NewRequestWithAuth(t testing.TB, method, path string, body any, token string) *http.Request {
	t.Helper()
	r := NewRequest(t, method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// Decode parses the envelope and, when out is non-nil, its data field.
func Decode(t testing.TB, w *httptest.ResponseRecorder, out any) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
