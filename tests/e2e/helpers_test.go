//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/truefeedback-backend/internal/app"
	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret-that-is-definitely-longer-than-32",
			JWTIssuer:      "truefeedback",
			AccessTokenTTL: time.Hour,
			BcryptCost:     bcrypt.MinCost,
		},
		Messages: config.MessagesConfig{MaxContentLength: 300},
		Search:   config.SearchConfig{MinQueryLength: 2, Limit: 8},
		CORS:     config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,DELETE,OPTIONS"},
	}

	handler, stop := app.NewHandler(cfg, logger, app.PostgresStorage(pool), clockwork.NewRealClock())
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

// signUpAndIn registers handle with a random email and returns a client
// holding its session token.
func signUpAndIn(t *testing.T, ts *testServer, handle string) *api.Client {
	t.Helper()
	ctx := context.Background()

	c := api.New(ts.URL)
	email := handle + "-" + testhelper.UniqueSuffix() + "@example.com"
	_, err := c.SignUp(ctx, handle, email, "secret123")
	require.NoError(t, err)
	_, err = c.SignIn(ctx, email, "secret123")
	require.NoError(t, err)
	return c
}

// uniqueHandle avoids collisions across tests sharing one database.
func uniqueHandle(prefix string) string {
	return prefix + testhelper.UniqueSuffix()
}
