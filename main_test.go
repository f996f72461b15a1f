package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testDBSeq int64

// newTestServer wires a server against a fresh in-memory database.
func newTestServer(t *testing.T) *server {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := openDB(dsn)
	require.NoError(t, err)

	cfg := Config{
		Port:      "0",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	return newServer(cfg, db)
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// adminToken logs in as the seeded admin and returns the issued token.
func adminToken(t *testing.T, mux *http.ServeMux) string {
	t.Helper()

	rec := doRequest(t, mux, http.MethodPost, "/api/auth/login", "", loginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
