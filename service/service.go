package service

import (
	"log/slog"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/internal/cdn"
	"github.com/loganlanou/clubhub/internal/handlers"
	"github.com/loganlanou/clubhub/storage"
	"github.com/loganlanou/clubhub/views/account"
	"github.com/loganlanou/clubhub/views/clubs"
	"github.com/loganlanou/clubhub/views/home"
	"github.com/loganlanou/clubhub/views/layout"
)

type Service struct {
	storage     *storage.Storage
	config      *Config
	provider    *auth.Provider
	authHandler *handlers.AuthHandler
	clubHandler *handlers.ClubHandler
}

func New(storage *storage.Storage, config *Config) *Service {
	provider := auth.NewProvider(storage.Queries, auth.ClerkVerifier{}, auth.NewClerkUsers(), auth.Options{
		SecureCookies: config.SecureCookies,
	})
	return newService(storage, config, provider)
}

func newService(storage *storage.Storage, config *Config, provider *auth.Provider) *Service {
	return &Service{
		storage:     storage,
		config:      config,
		provider:    provider,
		authHandler: handlers.NewAuthHandler(config.Clerk.PublishableKey, config.SecureCookies),
		clubHandler: handlers.NewClubHandler(storage.Queries, cdn.NewBuilder(config.Cloudinary.CloudName), config.BaseURL),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Configures the default Clerk backend used by the verifier and user client.
	// Tests inject fakes and never reach Clerk.
	clerk.SetKey(s.config.Clerk.SecretKey)

	e.GET("/health", s.handleHealth)

	// Logout - no auth middleware (must clear cookies without re-authentication)
	e.GET("/logout", s.authHandler.HandleLogout)

	// All other routes run inside the auth provider
	withAuth := e.Group("")
	withAuth.Use(s.provider.Handshake())
	withAuth.Use(s.provider.Middleware())

	withAuth.GET("/login", s.authHandler.HandleLogin)
	withAuth.GET("/signup", s.authHandler.HandleSignUp)
	withAuth.GET("/sign-up", s.authHandler.HandleSignUp)

	withAuth.GET("/", s.handleHome)

	withAuth.GET("/clubs", s.clubHandler.HandleClubsPage)
	withAuth.GET(clubs.ListPartialPath, s.clubHandler.HandleClubsPartial)

	accountGroup := withAuth.Group("/account", auth.RequireAuth())
	accountGroup.GET("", s.handleAccount)
	accountGroup.POST("/logout", s.authHandler.HandleLogoutRedirect)
	accountGroup.GET("/partials/clubs", s.clubHandler.HandleOwnedClubsPartial)

	api := withAuth.Group("/api")
	api.GET("/clubs", s.clubHandler.HandleList)
	api.POST("/clubs", s.clubHandler.HandleCreate)
	api.GET("/clubs/:id", s.clubHandler.HandleGet)
	api.DELETE("/clubs/:id", s.clubHandler.HandleDelete, auth.RequireAPIAuth())

	api.POST("/auth/logout", s.authHandler.HandleAPILogout)
	api.GET("/me", s.authHandler.HandleMe, auth.RequireAPIAuth())
}

func (s *Service) handleHome(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := s.storage.Queries.CountClubs(ctx)
	if err != nil {
		slog.Error("failed to count clubs", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load home page")
	}

	meta := layout.NewPageMeta(s.config.BaseURL, "/").
		WithTitle("Home").
		WithDescription("Discover and register student clubs")

	return handlers.Render(c, home.Page(meta, count))
}

func (s *Service) handleAccount(c echo.Context) error {
	meta := layout.NewPageMeta(s.config.BaseURL, "/account").WithTitle("Your account")
	return handlers.Render(c, account.Page(meta))
}

func (s *Service) handleHealth(c echo.Context) error {
	if err := s.storage.Ping(); err != nil {
		slog.Error("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":      "unhealthy",
			"environment": s.config.Environment,
			"database":    "unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    "connected",
	})
}
