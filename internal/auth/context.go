package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/storage/db"
)

// ErrContextUnavailable is returned when the auth context is read outside the
// scope of the auth provider middleware. It means a route was registered
// without Provider.Middleware, not that the visitor is signed out.
var ErrContextUnavailable = errors.New("auth: context unavailable outside auth provider")

type contextKey struct{}

// Context holds the authentication state of the current request. The
// provider middleware builds exactly one per request; consumers only read it.
type Context struct {
	User      *UserData
	IsLoading bool

	loginPath     string
	homePath      string
	secureCookies bool
}

// UserData contains user information for templates and JSON responses
type UserData struct {
	ID        string `json:"id"`
	ClerkID   string `json:"clerk_id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name"`
	ImageURL  string `json:"image_url,omitempty"`
	Username  string `json:"username,omitempty"`
	HasImage  bool   `json:"has_image"`
	IsAdmin   bool   `json:"is_admin"`
}

// Options configures the operations a Context exposes.
type Options struct {
	LoginPath     string
	HomePath      string
	SecureCookies bool
}

// NewContext returns a fully formed Context. Empty paths fall back to
// "/login" and "/".
func NewContext(user *UserData, isLoading bool, opts Options) *Context {
	if opts.LoginPath == "" {
		opts.LoginPath = "/login"
	}
	if opts.HomePath == "" {
		opts.HomePath = "/"
	}
	return &Context{
		User:          user,
		IsLoading:     isLoading,
		loginPath:     opts.LoginPath,
		homePath:      opts.HomePath,
		secureCookies: opts.SecureCookies,
	}
}

// IsAuthenticated reports whether a signed-in user is present and the
// session is no longer being established.
func (a *Context) IsAuthenticated() bool {
	return a.User != nil && !a.IsLoading
}

// Login redirects to the sign-in page, returning to the current URL afterwards.
func (a *Context) Login(c echo.Context) error {
	return c.Redirect(http.StatusFound, a.loginURL(c.Request().URL.RequestURI()))
}

// Logout clears the session cookies and sends the visitor home.
func (a *Context) Logout(c echo.Context) error {
	ClearCookies(c, a.secureCookies)
	return c.Redirect(http.StatusSeeOther, a.homePath)
}

// RedirectPath returns where a visitor asking for path should be sent.
// Signed-in users get path itself (or home when path is an auth page or not
// a local path); anonymous users get the login page with path as the return
// target. While the session is loading the path is returned unchanged.
func (a *Context) RedirectPath(path string) string {
	if a.IsLoading {
		return SafeRedirect(path, a.homePath)
	}
	if !a.IsAuthenticated() {
		return a.loginURL(SafeRedirect(path, a.homePath))
	}

	target := SafeRedirect(path, a.homePath)
	if p := strings.SplitN(target, "?", 2)[0]; p == a.loginPath || p == "/signup" || p == "/sign-up" {
		return a.homePath
	}
	return target
}

func (a *Context) loginURL(returnTo string) string {
	return a.loginPath + "?redirect_url=" + url.QueryEscape(returnTo)
}

// SafeRedirect returns target when it is a local absolute path, otherwise fallback.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}
	return target
}

// WithContext publishes the auth context for everything downstream of ctx.
// A nil value is not published.
func WithContext(ctx context.Context, a *Context) context.Context {
	if a == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the auth context published by the provider, or
// ErrContextUnavailable when none is in scope.
func FromContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, ErrContextUnavailable
	}
	a, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || a == nil {
		return nil, ErrContextUnavailable
	}
	return a, nil
}

// MustFromContext is FromContext for templ components. It panics with
// ErrContextUnavailable; echo's Recover middleware turns that into a 500.
func MustFromContext(ctx context.Context) *Context {
	a, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return a
}

// IsAuthenticated reports whether the request behind ctx is signed in.
func IsAuthenticated(ctx context.Context) (bool, error) {
	a, err := FromContext(ctx)
	if err != nil {
		return false, err
	}
	return a.IsAuthenticated(), nil
}

// GetAuthContext returns the auth context of the current echo request
func GetAuthContext(c echo.Context) (*Context, error) {
	return FromContext(c.Request().Context())
}

// CurrentUser returns the signed-in user, or nil for anonymous visitors.
// Outside a provider scope it returns ErrContextUnavailable.
func CurrentUser(c echo.Context) (*UserData, error) {
	a, err := GetAuthContext(c)
	if err != nil {
		return nil, err
	}
	if !a.IsAuthenticated() {
		return nil, nil
	}
	return a.User, nil
}

func userDataFromDB(u *db.User) *UserData {
	if u == nil {
		return nil
	}
	imageURL := stringValue(u.ProfileImageUrl.String, u.ProfileImageUrl.Valid)
	return &UserData{
		ID:        u.ID,
		ClerkID:   stringValue(u.ClerkID.String, u.ClerkID.Valid),
		Email:     u.Email,
		FirstName: stringValue(u.FirstName.String, u.FirstName.Valid),
		LastName:  stringValue(u.LastName.String, u.LastName.Valid),
		FullName:  u.FullName,
		ImageURL:  imageURL,
		Username:  stringValue(u.Username.String, u.Username.Valid),
		HasImage:  imageURL != "",
		IsAdmin:   u.IsAdmin,
	}
}

func stringValue(s string, valid bool) string {
	if valid {
		return s
	}
	return ""
}
