// Package cdn builds delivery URLs for images hosted on Cloudinary.
package cdn

import (
	"fmt"
	"strings"
)

const (
	DefaultBaseURL = "https://res.cloudinary.com"
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultCrop    = "fill"
	DefaultQuality = 80
)

// Options describes one image transformation. Zero values take the defaults.
type Options struct {
	PublicID string
	Width    int
	Height   int
	Crop     string
	Quality  int
}

// Builder maps public IDs to transformation URLs. It makes no network calls.
type Builder struct {
	CloudName string
	BaseURL   string
}

func NewBuilder(cloudName string) *Builder {
	return &Builder{
		CloudName: cloudName,
		BaseURL:   DefaultBaseURL,
	}
}

// URL returns the delivery URL for opts.
func (b *Builder) URL(opts Options) string {
	opts = withDefaults(opts)

	baseURL := b.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return fmt.Sprintf("%s/%s/image/upload/w_%d,h_%d,c_%s,q_%d/%s",
		strings.TrimSuffix(baseURL, "/"),
		b.CloudName,
		opts.Width,
		opts.Height,
		opts.Crop,
		opts.Quality,
		strings.TrimPrefix(opts.PublicID, "/"),
	)
}

// Thumbnail is a square, face-aware crop for avatars and list rows.
func (b *Builder) Thumbnail(publicID string) string {
	return b.URL(Options{
		PublicID: publicID,
		Width:    200,
		Height:   200,
		Crop:     "thumb",
	})
}

func withDefaults(opts Options) Options {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Crop == "" {
		opts.Crop = DefaultCrop
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	return opts
}
