package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/storage"
	"github.com/stretchr/testify/require"
)

const (
	ownerToken = "owner-token"
	otherToken = "other-token"
)

type fakeVerifier map[string]*auth.Session

func (f fakeVerifier) Verify(_ context.Context, token string) (*auth.Session, error) {
	if s, ok := f[token]; ok {
		return s, nil
	}
	return nil, errors.New("invalid token")
}

type fakeProfiles map[string]*auth.Profile

func (f fakeProfiles) GetProfile(_ context.Context, clerkID string) (*auth.Profile, error) {
	if p, ok := f[clerkID]; ok {
		return p, nil
	}
	return nil, errors.New("user not found")
}

// setupTestService creates a service instance with an in-memory database and
// a fake identity provider for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	sqlDB, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := storage.NewFromDB(sqlDB)

	config := &Config{
		Environment:     "test",
		Port:            "8080",
		BaseURL:         "http://localhost:8080",
		ShutdownTimeout: time.Second,
	}
	config.Cloudinary.CloudName = "clubhub-test"

	verifier := fakeVerifier{
		ownerToken: {UserID: "user_owner"},
		otherToken: {UserID: "user_other"},
	}
	profiles := fakeProfiles{
		"user_owner": {ClerkID: "user_owner", Email: "owner@example.com", FirstName: "Olive", LastName: "Owner"},
		"user_other": {ClerkID: "user_other", Email: "other@example.com", Username: "otto"},
	}

	provider := auth.NewProvider(store.Queries, verifier, profiles, auth.Options{})
	return newService(store, config, provider)
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	// Disable Echo's default error handler for cleaner test output
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// Just set status code, don't write response
		var he *echo.HTTPError
		if errors.As(err, &he) {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(http.StatusInternalServerError)
		}
	}

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// doRequest serves a request, signed in with token when it is not empty
func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// handshakeParam builds an unsigned handshake JWT carrying the given cookie instructions
func handshakeParam(t *testing.T, instructions ...string) string {
	t.Helper()

	payload, err := json.Marshal(map[string][]string{"handshake": instructions})
	require.NoError(t, err)
	return "e30." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}
