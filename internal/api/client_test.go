package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]any{"success": status >= 200 && status <= 299, "data": data}
	if message != "" {
		payload["message"] = message
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func newTestClient(handler http.Handler) (*Client, *MemoryTokenStore, *httptest.Server) {
	srv := httptest.NewServer(handler)
	tokens := &MemoryTokenStore{}
	return NewClient(srv.URL, tokens, nil), tokens, srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client, tokens, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, []any{}, "")
	}))
	defer srv.Close()

	require.NoError(t, tokens.Set("t1"))
	_, err := client.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoTokenNoHeader(t *testing.T) {
	headerPresent := false
	client, _, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerPresent = r.Header["Authorization"]
		writeEnvelope(w, http.StatusOK, []any{}, "")
	}))
	defer srv.Close()

	_, err := client.ListLeads(context.Background())
	require.NoError(t, err)
	assert.False(t, headerPresent)
}

func TestLoginStoresToken(t *testing.T) {
	client, tokens, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])
		writeEnvelope(w, http.StatusOK, map[string]any{
			"access_token": "t1",
			"user":         map[string]any{"id": "1", "role": "admin", "name": "Admin"},
		}, "")
	}))
	defer srv.Close()

	user, err := client.Login(context.Background(), "admin@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)
	assert.Equal(t, "t1", tokens.Token())
}

func Test401ClearsToken(t *testing.T) {
	var lastAuth []string
	client, tokens, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header["Authorization"]
		writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
	}))
	defer srv.Close()

	require.NoError(t, tokens.Set("stale"))
	_, err := client.ListLeads(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, tokens.Token(), "401 must clear the stored token")

	// The next call goes out without an Authorization header at all.
	_, _ = client.ListLeads(context.Background())
	assert.Empty(t, lastAuth)
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"forbidden", http.StatusForbidden, "no", ErrForbidden},
		{"locked", http.StatusLocked, "account locked", ErrAccountLocked},
		{"validation 422", http.StatusUnprocessableEntity, "missing name", ErrValidation},
		{"validation 400", http.StatusBadRequest, "bad payload", ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tc.status, nil, tc.message)
			}))
			defer srv.Close()

			err := client.DeleteLead(context.Background(), "L1")
			require.ErrorIs(t, err, tc.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestGenericErrorKeepsServerMessage(t *testing.T) {
	client, _, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, nil, "database on fire")
	}))
	defer srv.Close()

	err := client.DeleteLead(context.Background(), "L1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "database on fire", apiErr.Message)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	client := NewClient(url, &MemoryTokenStore{}, nil)
	_, err := client.ListLeads(context.Background())
	require.ErrorIs(t, err, ErrBackendUnreachable)
}

func TestSuccessFalseIsAnError(t *testing.T) {
	client, _, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer srv.Close()

	_, err := client.ListLeads(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "nope", apiErr.Message)
}
