//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres/testhelper"
	"github.com/ryankelly77/raptor-portal-sub000/internal/app"
	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
)

const adminPassword = "e2e-admin-password"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-at-least-32-chars-long!!",
			JWTIssuer:         "test-issuer",
			AdminTokenTTL:     time.Hour,
			DriverTokenTTL:    time.Hour,
			AdminPasswordHash: string(hash),
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{PublicPerMinute: 1000, LoginPerMinute: 1000},
		TempLog: config.TempLogConfig{
			AllowMultipleActive:  true,
			HistoryWindowDays:    30,
			MaxHistoryWindowDays: 365,
			StaleAfterHours:      36,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWith(t, testConfig(t))
}

func setupTestServerWith(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	handler := app.NewHandler(cfg, zaptest.NewLogger(t), pool)
	t.Cleanup(handler.Close)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a JSON request and returns status + decoded body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// adminToken logs in as admin through the API.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/auth/admin/login", map[string]any{"password": adminPassword}, "")
	require.Equal(t, http.StatusOK, status, "admin login: %v", body)
	tok, ok := body["token"].(string)
	require.True(t, ok && tok != "", "expected token in %v", body)
	return tok
}

// driverToken seeds a driver with the given PIN through the admin API and
// logs in as that driver.
func (ts *testServer) driverToken(t *testing.T, admin string) (string, string) {
	t.Helper()

	d := testhelper.SeedDriver(t, ts.Pool, "")

	status, body := ts.do(t, http.MethodPost, "/api/admin/drivers/"+d.ID.String()+"/pin", map[string]any{"pin": "4821"}, admin)
	require.Equal(t, http.StatusOK, status, "set pin: %v", body)

	status, body = ts.do(t, http.MethodPost, "/api/auth/driver/login", map[string]any{"email": d.Email, "pin": "4821"}, "")
	require.Equal(t, http.StatusOK, status, "driver login: %v", body)
	require.Equal(t, d.ID.String(), body["driverId"])

	return body["token"].(string), d.ID.String()
}

// tempLog posts one temp-log action.
func (ts *testServer) tempLog(t *testing.T, token, action string, id any, data map[string]any) (int, map[string]any) {
	t.Helper()

	body := map[string]any{"action": action}
	if id != nil {
		body["id"] = id
	}
	if data != nil {
		body["data"] = data
	}
	return ts.do(t, http.MethodPost, "/api/driver/temp-log", body, token)
}

// crud posts one dispatcher request.
func (ts *testServer) crud(t *testing.T, token string, req map[string]any) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodPost, "/api/admin/crud", req, token)
}

func object(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := body[key].(map[string]any)
	require.True(t, ok, "expected object %q in %v", key, body)
	return v
}

func list(t *testing.T, body map[string]any, key string) []any {
	t.Helper()
	v, ok := body[key].([]any)
	require.True(t, ok, "expected array %q in %v", key, body)
	return v
}
