package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie Clerk keeps the short-lived session JWT in
const SessionCookieName = "__session"

// ClerkCookieNames lists every cookie Clerk sets on our domain
var ClerkCookieNames = []string{SessionCookieName, "__clerk_db_jwt", "__client_uat", "__client"}

// ClearCookies expires every Clerk cookie on the response
func ClearCookies(c echo.Context, secure bool) {
	for _, name := range ClerkCookieNames {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	slog.Debug("=== LOGOUT: Cleared auth cookies ===", "count", len(ClerkCookieNames))
}

func setSessionCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   31536000, // Clerk's default
	})
}

// extractSessionToken gets the session token from the __session cookie,
// falling back to an Authorization: Bearer header for API clients. Other
// authorization schemes are not session tokens.
func extractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return ""
}
