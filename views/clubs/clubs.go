package clubs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/loganlanou/clubhub/views/helpers"
	"github.com/loganlanou/clubhub/views/layout"
	"github.com/loganlanou/clubhub/views/skeleton"
)

// ListPartialPath is fetched by the page once the skeleton is on screen
const ListPartialPath = "/clubs/partials/list"

// OwnedPartialPath serves the signed-in user's clubs table
const OwnedPartialPath = "/account/partials/clubs"

// Card is the display form of a club
type Card struct {
	ID          string
	Name        string
	Category    string
	Description string
	LogoURL     string
	CreatedAt   time.Time
}

// Page renders the clubs index with a skeleton grid that htmx swaps for the list
func Page(meta layout.PageMeta, placeholders int) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1 class="mb-6 text-2xl font-bold">Clubs</h1><div id="club-list" hx-get="%s" hx-trigger="load" hx-swap="outerHTML">`, ListPartialPath); err != nil {
			return err
		}
		if err := skeleton.Grid(placeholders).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return layout.Base(meta, content)
}

// List renders the club cards
func List(cards []Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(cards) == 0 {
			_, err := io.WriteString(w, `<div id="club-list"><p class="text-gray-500">No clubs registered yet.</p></div>`)
			return err
		}

		if _, err := io.WriteString(w, `<div id="club-list" class="grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-3">`); err != nil {
			return err
		}
		for _, card := range cards {
			if err := writeCard(w, card); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writeCard(w io.Writer, card Card) error {
	if _, err := fmt.Fprintf(w, `<article class="rounded-xl border border-gray-100 p-4 shadow-sm" data-club-id="%s">`, templ.EscapeString(card.ID)); err != nil {
		return err
	}
	if card.LogoURL != "" {
		if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s logo" loading="lazy" class="h-16 w-16 rounded-lg object-cover">`,
			templ.EscapeString(card.LogoURL),
			templ.EscapeString(card.Name),
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `<h2 class="mt-4 text-lg font-semibold">%s</h2><p class="text-xs uppercase text-gray-500">%s</p><p class="mt-2 text-sm text-gray-700">%s</p><time class="mt-2 block text-xs text-gray-400" datetime="%s" title="%s">%s</time></article>`,
		templ.EscapeString(card.Name),
		templ.EscapeString(card.Category),
		templ.EscapeString(helpers.Truncate(card.Description, 160)),
		card.CreatedAt.Format(time.RFC3339),
		helpers.FormatDateTime(card.CreatedAt),
		helpers.FormatDate(card.CreatedAt),
	)
	return err
}

// OwnedRow is one line of the account page's club table
type OwnedRow struct {
	ID         string
	Name       string
	Category   string
	Registered string
}

// OwnedTable lists the clubs a user registered
func OwnedTable(rows []OwnedRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := io.WriteString(w, `<div id="owned-clubs"><p class="text-gray-500">You have not registered a club yet. <a href="/clubs" class="underline">Browse clubs</a></p></div>`)
			return err
		}

		if _, err := io.WriteString(w, `<div id="owned-clubs"><table class="w-full text-left text-sm"><thead><tr><th>Name</th><th>Category</th><th>Registered</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr data-club-id="%s"><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.ID),
				templ.EscapeString(row.Name),
				templ.EscapeString(row.Category),
				templ.EscapeString(row.Registered),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}
