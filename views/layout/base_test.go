package layout

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emptyBody = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "<p>body</p>")
	return err
})

func renderBase(t *testing.T, ac *auth.Context) string {
	t.Helper()

	var buf bytes.Buffer
	ctx := auth.WithContext(context.Background(), ac)
	meta := NewPageMeta("https://clubs.example.com", "/clubs").WithTitle("Clubs")
	require.NoError(t, Base(meta, emptyBody).Render(ctx, &buf))
	return buf.String()
}

func TestBase_Anonymous(t *testing.T) {
	html := renderBase(t, auth.NewContext(nil, false, auth.Options{}))

	assert.Contains(t, html, `<a href="/login">Sign in</a>`)
	assert.Contains(t, html, "<title>Clubs | ClubHub</title>")
	assert.Contains(t, html, `href="https://clubs.example.com/clubs"`)
	assert.Contains(t, html, "<p>body</p>")
}

func TestBase_SignedIn(t *testing.T) {
	html := renderBase(t, auth.NewContext(&auth.UserData{ID: "u1", FullName: "Ada <Admin>"}, false, auth.Options{}))

	assert.Contains(t, html, "Ada &lt;Admin&gt;")
	assert.Contains(t, html, `href="/logout"`)
	assert.NotContains(t, html, "Sign in")
}

func TestBase_LoadingShowsPlaceholder(t *testing.T) {
	html := renderBase(t, auth.NewContext(nil, true, auth.Options{}))

	assert.Contains(t, html, "rounded-full")
	assert.NotContains(t, html, "Sign in")
	assert.NotContains(t, html, "Sign out")
}

func TestBase_WithoutProviderPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = Base(NewPageMeta("https://x", "/"), emptyBody).Render(context.Background(), io.Discard)
	})
}

func TestBuildAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://x.com/a", BuildAbsoluteURL("https://x.com/", "a"))
	assert.Equal(t, "https://x.com", BuildAbsoluteURL("https://x.com", ""))
	assert.Equal(t, "https://cdn.com/i.png", BuildAbsoluteURL("https://x.com", "https://cdn.com/i.png"))
}
