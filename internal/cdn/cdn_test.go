package cdn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	b := NewBuilder("clubhub")

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "defaults",
			opts: Options{PublicID: "clubs/chess"},
			want: "https://res.cloudinary.com/clubhub/image/upload/w_800,h_600,c_fill,q_80/clubs/chess",
		},
		{
			name: "explicit",
			opts: Options{PublicID: "logo", Width: 320, Height: 240, Crop: "fit", Quality: 60},
			want: "https://res.cloudinary.com/clubhub/image/upload/w_320,h_240,c_fit,q_60/logo",
		},
		{
			name: "partial override",
			opts: Options{PublicID: "banner", Width: 1200},
			want: "https://res.cloudinary.com/clubhub/image/upload/w_1200,h_600,c_fill,q_80/banner",
		},
		{
			name: "negative values fall back",
			opts: Options{PublicID: "x", Width: -1, Quality: -5},
			want: "https://res.cloudinary.com/clubhub/image/upload/w_800,h_600,c_fill,q_80/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.URL(tt.opts))
		})
	}
}

func TestURL_CustomBase(t *testing.T) {
	b := &Builder{CloudName: "demo", BaseURL: "https://cdn.example.com/"}

	assert.Equal(t,
		"https://cdn.example.com/demo/image/upload/w_800,h_600,c_fill,q_80/sample",
		b.URL(Options{PublicID: "/sample"}))
}

func TestURL_EmptyBaseUsesDefault(t *testing.T) {
	b := &Builder{CloudName: "demo"}

	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/w_800,h_600,c_fill,q_80/sample",
		b.URL(Options{PublicID: "sample"}))
}

func TestThumbnail(t *testing.T) {
	b := NewBuilder("clubhub")

	assert.Equal(t,
		"https://res.cloudinary.com/clubhub/image/upload/w_200,h_200,c_thumb,q_80/avatar",
		b.Thumbnail("avatar"))
}
