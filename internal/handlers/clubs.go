package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/internal/cdn"
	"github.com/loganlanou/clubhub/storage/db"
	"github.com/loganlanou/clubhub/views/clubs"
	"github.com/loganlanou/clubhub/views/helpers"
	"github.com/loganlanou/clubhub/views/layout"
	"github.com/oklog/ulid/v2"
)

const (
	maxClubNameLength = 120
	defaultListLimit  = 50
	maxListLimit      = 100
	defaultCategory   = "general"
	ogImageScanLimit  = 10
)

type ClubHandler struct {
	queries *db.Queries
	images  *cdn.Builder
	siteURL string
}

func NewClubHandler(queries *db.Queries, images *cdn.Builder, siteURL string) *ClubHandler {
	return &ClubHandler{
		queries: queries,
		images:  images,
		siteURL: siteURL,
	}
}

// CreateClubRequest is the club registration payload
type CreateClubRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	ContactEmail  string `json:"contact_email"`
	PresidentName string `json:"president_name"`
	LogoPublicID  string `json:"logo_public_id"`
}

func (r *CreateClubRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	r.PresidentName = strings.TrimSpace(r.PresidentName)
	r.LogoPublicID = strings.TrimSpace(r.LogoPublicID)
	if r.Category == "" {
		r.Category = defaultCategory
	}
}

func (r *CreateClubRequest) validate() error {
	if r.Name == "" {
		return errors.New("club name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxClubNameLength {
		return fmt.Errorf("club name must be at most %d characters", maxClubNameLength)
	}
	if r.ContactEmail == "" {
		return errors.New("contact email is required")
	}
	if _, err := mail.ParseAddress(r.ContactEmail); err != nil {
		return fmt.Errorf("contact email is invalid: %w", err)
	}
	return nil
}

// ClubResponse is the JSON form of a club
type ClubResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	ContactEmail  string    `json:"contact_email"`
	PresidentName string    `json:"president_name,omitempty"`
	LogoPublicID  string    `json:"logo_public_id,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	OwnerID       string    `json:"owner_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *ClubHandler) toResponse(club db.Club) ClubResponse {
	resp := ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   nullStringToString(club.Description),
		Category:      club.Category,
		ContactEmail:  club.ContactEmail,
		PresidentName: nullStringToString(club.PresidentName),
		LogoPublicID:  nullStringToString(club.LogoPublicID),
		OwnerID:       nullStringToString(club.OwnerID),
		CreatedAt:     nullTimeToTime(club.CreatedAt),
	}
	if resp.LogoPublicID != "" {
		resp.LogoURL = h.images.URL(cdn.Options{PublicID: resp.LogoPublicID})
	}
	return resp
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"message": message})
}

// HandleCreate registers a new club
func (h *ClubHandler) HandleCreate(c echo.Context) error {
	var req CreateClubRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	req.normalize()
	if err := req.validate(); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var ownerID sql.NullString
	if user != nil {
		ownerID = sql.NullString{String: user.ID, Valid: true}
	}

	club, err := h.queries.CreateClub(c.Request().Context(), db.CreateClubParams{
		ID:            ulid.Make().String(),
		Name:          req.Name,
		Description:   toNullString(req.Description),
		Category:      req.Category,
		ContactEmail:  req.ContactEmail,
		PresidentName: toNullString(req.PresidentName),
		LogoPublicID:  toNullString(req.LogoPublicID),
		OwnerID:       ownerID,
	})
	if err != nil {
		slog.Warn("failed to save club", "error", err, "name", req.Name)
		return badRequest(c, err.Error())
	}

	slog.Info("club registered", "club_id", club.ID, "name", club.Name, "owner_id", ownerID.String)
	return c.JSON(http.StatusCreated, h.toResponse(club))
}

// HandleList returns the newest clubs
func (h *ClubHandler) HandleList(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return badRequest(c, "limit must be a positive integer")
		}
		limit = min(n, maxListLimit)
	}

	rows, err := h.queries.ListClubs(c.Request().Context(), int64(limit))
	if err != nil {
		slog.Error("failed to list clubs", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch clubs")
	}

	resp := make([]ClubResponse, 0, len(rows))
	for _, club := range rows {
		resp = append(resp, h.toResponse(club))
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleGet returns one club
func (h *ClubHandler) HandleGet(c echo.Context) error {
	club, err := h.queries.GetClub(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Club not found"})
		}
		slog.Error("failed to fetch club", "error", err, "club_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch club")
	}
	return c.JSON(http.StatusOK, h.toResponse(club))
}

// HandleDelete removes a club; only its owner or an admin may do so
func (h *ClubHandler) HandleDelete(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	club, err := h.queries.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Club not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch club")
	}

	if !user.IsAdmin && (!club.OwnerID.Valid || club.OwnerID.String != user.ID) {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Only the club owner can delete this club"})
	}

	if err := h.queries.DeleteClub(ctx, id); err != nil {
		slog.Error("failed to delete club", "error", err, "club_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete club")
	}

	slog.Info("club deleted", "club_id", id, "user_id", user.ID)
	return c.NoContent(http.StatusNoContent)
}

// HandleClubsPage renders the clubs index shell; the list loads separately
func (h *ClubHandler) HandleClubsPage(c echo.Context) error {
	meta := layout.NewPageMeta(h.siteURL, c.Request().URL.Path).
		WithTitle("Clubs").
		WithDescription("Browse every registered club")

	if logo := h.latestLogo(c); logo != "" {
		meta = meta.WithOGImage(h.images.URL(cdn.Options{PublicID: logo, Width: 1200, Height: 630}))
	}

	return Render(c, clubs.Page(meta, 6))
}

// latestLogo returns the logo of the newest club that has one. Failures only
// cost the share preview, so they are logged and ignored.
func (h *ClubHandler) latestLogo(c echo.Context) string {
	rows, err := h.queries.ListClubs(c.Request().Context(), ogImageScanLimit)
	if err != nil {
		slog.Warn("failed to look up club logo for og:image", "error", err)
		return ""
	}
	for _, club := range rows {
		if club.LogoPublicID.Valid && club.LogoPublicID.String != "" {
			return club.LogoPublicID.String
		}
	}
	return ""
}

// HandleClubsPartial renders the club cards fragment
func (h *ClubHandler) HandleClubsPartial(c echo.Context) error {
	rows, err := h.queries.ListClubs(c.Request().Context(), defaultListLimit)
	if err != nil {
		slog.Error("failed to list clubs", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to fetch clubs")
	}

	cards := make([]clubs.Card, 0, len(rows))
	for _, club := range rows {
		card := clubs.Card{
			ID:          club.ID,
			Name:        club.Name,
			Category:    club.Category,
			Description: nullStringToString(club.Description),
			CreatedAt:   nullTimeToTime(club.CreatedAt),
		}
		if club.LogoPublicID.Valid && club.LogoPublicID.String != "" {
			card.LogoURL = h.images.Thumbnail(club.LogoPublicID.String)
		}
		cards = append(cards, card)
	}

	return Render(c, clubs.List(cards))
}

// HandleOwnedClubsPartial renders the signed-in user's clubs for the account page
func (h *ClubHandler) HandleOwnedClubsPartial(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	owned, err := h.queries.ListClubsByOwner(c.Request().Context(), sql.NullString{String: user.ID, Valid: true})
	if err != nil {
		slog.Error("failed to list owned clubs", "error", err, "user_id", user.ID)
		return c.String(http.StatusInternalServerError, "Failed to fetch clubs")
	}

	rows := make([]clubs.OwnedRow, 0, len(owned))
	for _, club := range owned {
		rows = append(rows, clubs.OwnedRow{
			ID:         club.ID,
			Name:       club.Name,
			Category:   club.Category,
			Registered: helpers.FormatNullTime(club.CreatedAt, "Jan 2, 2006", "unknown"),
		})
	}

	return Render(c, clubs.OwnedTable(rows))
}

// Helper functions
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
