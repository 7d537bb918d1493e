package home

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/views/layout"
)

// Page is the landing page. Signed-in visitors get a greeting instead of the
// sign-up prompt.
func Page(meta layout.PageMeta, clubCount int64) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ac := auth.MustFromContext(ctx)

		if _, err := fmt.Fprintf(w, `<section class="py-12 text-center"><h1 class="text-4xl font-bold">Find your people</h1><p class="mt-4 text-gray-600">%d clubs registered so far.</p>`, clubCount); err != nil {
			return err
		}

		var cta string
		switch {
		case ac.IsLoading:
			cta = `<p class="mt-6 text-gray-400">Checking your session…</p>`
		case ac.IsAuthenticated():
			cta = fmt.Sprintf(`<p class="mt-6">Welcome back, %s. <a href="/clubs" class="underline">Browse clubs</a></p>`, templ.EscapeString(ac.User.FullName))
		default:
			cta = `<p class="mt-6"><a href="/signup" class="rounded bg-gray-900 px-4 py-2 text-white">Register your club</a></p>`
		}
		if _, err := io.WriteString(w, cta); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return layout.Base(meta, content)
}
