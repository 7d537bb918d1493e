package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/storage"
	"github.com/loganlanou/clubhub/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// SetAuthContext publishes an auth context on the request, as the provider middleware would
func SetAuthContext(c echo.Context, user *auth.UserData) {
	ac := auth.NewContext(user, false, auth.Options{})
	c.SetRequest(c.Request().WithContext(auth.WithContext(c.Request().Context(), ac)))
}

// NewTestQueries creates a migrated in-memory database
func NewTestQueries(t *testing.T) *db.Queries {
	t.Helper()

	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return queries
}

// CreateTestUser creates a test user in the database
func CreateTestUser(t *testing.T, queries *db.Queries, email string) *auth.UserData {
	t.Helper()

	user, err := queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:        ulid.Make().String(),
		Email:     email,
		FirstName: sql.NullString{String: "Test", Valid: true},
		LastName:  sql.NullString{String: "User", Valid: true},
		FullName:  "Test User",
	})
	require.NoError(t, err)

	return &auth.UserData{ID: user.ID, Email: user.Email, FullName: user.FullName}
}

// decodeJSON decodes the recorded response body into v
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
