package account

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/views/clubs"
	"github.com/loganlanou/clubhub/views/layout"
	"github.com/loganlanou/clubhub/views/skeleton"
)

// Page shows the signed-in user's profile. Callers guard it with RequireAuth.
func Page(meta layout.PageMeta) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		user := auth.MustFromContext(ctx).User
		if user == nil {
			_, err := io.WriteString(w, `<p>Not signed in.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<section class="max-w-lg">`); err != nil {
			return err
		}
		if user.HasImage {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="" class="h-16 w-16 rounded-full">`, templ.EscapeString(user.ImageURL)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<h1 class="mt-4 text-2xl font-bold">%s</h1><p class="text-gray-600">%s</p><h2 class="mt-8 text-lg font-semibold">Your clubs</h2><div id="owned-clubs" hx-get="%s" hx-trigger="load" hx-swap="outerHTML">`,
			templ.EscapeString(user.FullName),
			templ.EscapeString(user.Email),
			clubs.OwnedPartialPath,
		)
		if err != nil {
			return err
		}
		if err := skeleton.Table(3, 3).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</div><form method="post" action="/account/logout" class="mt-6"><button type="submit" class="underline">Sign out</button></form></section>`)
		return err
	})
	return layout.Base(meta, content)
}
