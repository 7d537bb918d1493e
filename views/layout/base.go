package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/loganlanou/clubhub/internal/auth"
	"github.com/loganlanou/clubhub/views/skeleton"
)

// Base renders the page shell around body. It must run under the auth
// provider; the nav reads the auth context.
func Base(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ac := auth.MustFromContext(ctx)

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><meta name="description" content="%s"><link rel="canonical" href="%s">`,
			templ.EscapeString(meta.Title),
			templ.EscapeString(meta.Description),
			templ.EscapeString(meta.CanonicalURL),
		); err != nil {
			return err
		}
		if meta.OGImageURL != "" {
			if _, err := fmt.Fprintf(w, `<meta property="og:image" content="%s">`, templ.EscapeString(meta.OGImageURL)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<script src="https://cdn.tailwindcss.com"></script><script src="https://unpkg.com/htmx.org@2.0.4"></script></head><body class="bg-white text-gray-900">`); err != nil {
			return err
		}

		if err := nav(ctx, w, ac); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="mx-auto max-w-6xl px-4 py-8">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func nav(ctx context.Context, w io.Writer, ac *auth.Context) error {
	if _, err := io.WriteString(w, `<nav class="border-b border-gray-100"><div class="mx-auto flex max-w-6xl items-center justify-between px-4 py-3"><a href="/" class="font-semibold">ClubHub</a><div class="flex items-center gap-4"><a href="/clubs">Clubs</a>`); err != nil {
		return err
	}

	switch {
	case ac.IsLoading:
		if err := skeleton.Avatar("h-8 w-8").Render(ctx, w); err != nil {
			return err
		}
	case ac.IsAuthenticated():
		if _, err := fmt.Fprintf(w, `<span data-user-id="%s">%s</span><a href="/logout">Sign out</a>`,
			templ.EscapeString(ac.User.ID),
			templ.EscapeString(ac.User.FullName),
		); err != nil {
			return err
		}
	default:
		if _, err := io.WriteString(w, `<a href="/login">Sign in</a>`); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</div></div></nav>`)
	return err
}
