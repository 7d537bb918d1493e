package layout

import (
	"strings"
)

// PageMeta contains the metadata rendered into <head>
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string
	OGImageURL   string // MUST be absolute URL
	SiteName     string
	SiteURL      string
}

// NewPageMeta creates a PageMeta with site-wide defaults for the page at path
func NewPageMeta(siteURL, path string) PageMeta {
	const (
		siteName    = "ClubHub"
		description = "Find and register student clubs"
	)

	return PageMeta{
		Title:        siteName,
		Description:  description,
		CanonicalURL: BuildAbsoluteURL(siteURL, path),
		SiteName:     siteName,
		SiteURL:      siteURL,
	}
}

// WithTitle sets the page title, suffixed with the site name
func (pm PageMeta) WithTitle(title string) PageMeta {
	if title != "" {
		pm.Title = title + " | " + pm.SiteName
	}
	return pm
}

// WithDescription overrides the description when non-empty
func (pm PageMeta) WithDescription(description string) PageMeta {
	if description != "" {
		pm.Description = description
	}
	return pm
}

// WithOGImage overrides the OG image URL
func (pm PageMeta) WithOGImage(imageURL string) PageMeta {
	pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, imageURL)
	return pm
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}
