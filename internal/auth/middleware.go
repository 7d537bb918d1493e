package auth

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/storage/db"
)

const handshakeParam = "__clerk_handshake"

// UserStore is the slice of the generated queries the provider needs
type UserStore interface {
	GetUserByClerkID(ctx context.Context, clerkID sql.NullString) (db.User, error)
	UpsertUserByClerkID(ctx context.Context, arg db.UpsertUserByClerkIDParams) (db.User, error)
}

// Provider resolves the auth context of each request and publishes it on
// the request context.
type Provider struct {
	users    UserStore
	verifier SessionVerifier
	profiles UserSource
	opts     Options
}

func NewProvider(users UserStore, verifier SessionVerifier, profiles UserSource, opts Options) *Provider {
	return &Provider{
		users:    users,
		verifier: verifier,
		profiles: profiles,
		opts:     opts,
	}
}

// Handshake processes Clerk's handshake redirect. Clerk's JS SDK sets
// __session with the Secure flag, which browsers drop on plain-HTTP
// localhost, so the session token is copied from the handshake payload into
// our own cookie and the visitor is redirected to the same path.
func (p *Provider) Handshake() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			handshake := c.QueryParam(handshakeParam)
			if handshake == "" {
				return next(c)
			}

			token, err := sessionFromHandshake(handshake)
			if err != nil {
				slog.Warn("=== HANDSHAKE: Failed to process handshake ===", "error", err)
				return next(c)
			}

			setSessionCookie(c, token, p.opts.SecureCookies)

			redirectURL := c.Request().URL.Path
			if redirectURL == "" {
				redirectURL = "/"
			}
			slog.Debug("=== HANDSHAKE: Session cookie set, redirecting ===", "url", redirectURL)
			return c.Redirect(http.StatusFound, redirectURL)
		}
	}
}

// Middleware publishes an auth context for every request. It never rejects
// a request; use RequireAuth for that.
func (p *Provider) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac := p.resolve(c)
			req := c.Request()
			c.SetRequest(req.WithContext(WithContext(req.Context(), ac)))
			return next(c)
		}
	}
}

func (p *Provider) resolve(c echo.Context) *Context {
	req := c.Request()
	path := req.URL.Path

	// A pending handshake only means "loading" while no valid session is known.
	handshakePending := c.QueryParam(handshakeParam) != ""

	token := extractSessionToken(req)
	if token == "" {
		if handshakePending {
			slog.Debug("=== MIDDLEWARE: Handshake pending ===", "path", path)
			return NewContext(nil, true, p.opts)
		}
		slog.Debug("=== MIDDLEWARE: No session token found ===", "path", path)
		return NewContext(nil, false, p.opts)
	}

	session, err := p.verifier.Verify(req.Context(), token)
	if err != nil {
		if handshakePending {
			slog.Debug("=== MIDDLEWARE: Handshake pending, stale session ignored ===", "error", err, "path", path)
			return NewContext(nil, true, p.opts)
		}
		slog.Warn("=== MIDDLEWARE: Session verification failed, clearing cookies ===", "error", err, "path", path)
		ClearCookies(c, p.opts.SecureCookies)
		return NewContext(nil, false, p.opts)
	}

	dbUser, err := p.getOrCreateUser(req.Context(), session.UserID)
	if err != nil {
		slog.Error("=== MIDDLEWARE: Failed to get/create user ===", "error", err, "clerk_id", session.UserID)
		return NewContext(nil, false, p.opts)
	}

	slog.Debug("=== MIDDLEWARE: User authenticated ===", "user_id", dbUser.ID, "path", path)
	return NewContext(userDataFromDB(dbUser), false, p.opts)
}

// getOrCreateUser looks the user up by Clerk ID and syncs the profile from
// Clerk on first sight
func (p *Provider) getOrCreateUser(ctx context.Context, clerkID string) (*db.User, error) {
	existing, err := p.users.GetUserByClerkID(ctx, sql.NullString{String: clerkID, Valid: true})
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	profile, err := p.profiles.GetProfile(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	synced, err := p.users.UpsertUserByClerkID(ctx, db.UpsertUserByClerkIDParams{
		ID:              uuid.New().String(),
		ClerkID:         sql.NullString{String: clerkID, Valid: true},
		Email:           profile.Email,
		FirstName:       toNullString(profile.FirstName),
		LastName:        toNullString(profile.LastName),
		FullName:        profile.FullName(),
		Username:        toNullString(profile.Username),
		ProfileImageUrl: toNullString(profile.ImageURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	slog.Info("user synced from clerk", "user_id", synced.ID, "clerk_id", clerkID)
	return &synced, nil
}

// RequireAuth sends anonymous visitors to the login page
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac, err := GetAuthContext(c)
			if err != nil {
				return err
			}
			if !ac.IsAuthenticated() {
				return ac.Login(c)
			}
			return next(c)
		}
	}
}

// RequireAPIAuth rejects anonymous API calls with 401
func RequireAPIAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac, err := GetAuthContext(c)
			if err != nil {
				return err
			}
			if !ac.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// sessionFromHandshake extracts the __session value from the cookie
// instructions carried in the handshake JWT payload
func sessionFromHandshake(handshakeJWT string) (string, error) {
	parts := strings.Split(handshakeJWT, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid handshake JWT format")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode handshake payload: %w", err)
	}

	var data struct {
		Handshake []string `json:"handshake"`
	}
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("failed to parse handshake payload: %w", err)
	}

	for _, instruction := range data.Handshake {
		value, ok := strings.CutPrefix(instruction, SessionCookieName+"=")
		if !ok {
			continue
		}
		token, _, _ := strings.Cut(value, ";")
		if token == "" {
			continue
		}
		return token, nil
	}

	return "", fmt.Errorf("no %s cookie found in handshake", SessionCookieName)
}

func toNullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}
