package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/internal/auth"
	authviews "github.com/loganlanou/clubhub/views/auth"
)

// AuthHandler handles authentication routes
type AuthHandler struct {
	publishableKey string
	secureCookies  bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(publishableKey string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		publishableKey: publishableKey,
		secureCookies:  secureCookies,
	}
}

// HandleLogin renders the Clerk sign-in component page
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	ac, err := auth.GetAuthContext(c)
	if err != nil {
		return err
	}

	redirectURL := auth.SafeRedirect(c.QueryParam("redirect_url"), "/")
	if ac.IsAuthenticated() {
		return c.Redirect(http.StatusFound, ac.RedirectPath(redirectURL))
	}

	slog.Debug("Rendering sign-in page", "redirect_url", redirectURL)
	return Render(c, authviews.SignIn(h.publishableKey, redirectURL))
}

// HandleSignUp renders the Clerk sign-up component page
func (h *AuthHandler) HandleSignUp(c echo.Context) error {
	ac, err := auth.GetAuthContext(c)
	if err != nil {
		return err
	}
	if ac.IsAuthenticated() {
		return c.Redirect(http.StatusFound, ac.RedirectPath("/"))
	}

	return Render(c, authviews.SignUp(h.publishableKey))
}

// HandleLogout clears the auth cookies and renders the page that finishes
// the Clerk sign-out in the browser. Registered outside the auth provider so
// a broken session can always be cleared.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	slog.Debug("=== LOGOUT: Starting logout process ===", "path", c.Request().URL.Path, "cookies", len(c.Request().Cookies()))

	auth.ClearCookies(c, h.secureCookies)

	return Render(c, authviews.SignOut(h.publishableKey))
}

// HandleLogoutRedirect is the form-post logout used inside the provider scope
func (h *AuthHandler) HandleLogoutRedirect(c echo.Context) error {
	ac, err := auth.GetAuthContext(c)
	if err != nil {
		return err
	}
	return ac.Logout(c)
}

// HandleAPILogout clears the auth cookies for API clients
func (h *AuthHandler) HandleAPILogout(c echo.Context) error {
	auth.ClearCookies(c, h.secureCookies)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

type meResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *auth.UserData `json:"user"`
}

// HandleMe returns the signed-in user
func (h *AuthHandler) HandleMe(c echo.Context) error {
	ac, err := auth.GetAuthContext(c)
	if err != nil {
		return err
	}
	if !ac.IsAuthenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return c.JSON(http.StatusOK, meResponse{
		Authenticated: true,
		User:          ac.User,
	})
}
