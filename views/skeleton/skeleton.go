// Package skeleton renders loading placeholders shown while a fragment is
// fetched. Components are stateless; extra classes passed by callers are
// merged over the defaults so that e.g. Line("w-1/2") replaces "w-full".
package skeleton

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const (
	baseBlock   = "rounded bg-gray-200 dark:bg-gray-700"
	defaultGrid = 6
)

// Line is a single text-height bar
func Line(classes ...string) templ.Component {
	return block(merge("h-4 w-full "+baseBlock, classes))
}

// Avatar is a round image placeholder
func Avatar(classes ...string) templ.Component {
	return block(merge("h-10 w-10 rounded-full bg-gray-200 dark:bg-gray-700", classes))
}

// Image is a 4:3 media placeholder
func Image(classes ...string) templ.Component {
	return block(merge("aspect-[4/3] w-full rounded-lg bg-gray-200 dark:bg-gray-700", classes))
}

// Text is a paragraph of n lines, the last one shorter
func Text(lines int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-2">`); err != nil {
			return err
		}
		for i := 0; i < lines; i++ {
			width := "w-full"
			if i == lines-1 && lines > 1 {
				width = "w-2/3"
			}
			if err := Line(width).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Card mirrors the layout of a club card: image, title and two lines of text
func Card() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="rounded-xl border border-gray-100 p-4 shadow-sm">`); err != nil {
			return err
		}
		if err := Image().Render(ctx, w); err != nil {
			return err
		}
		if err := Line("mt-4 h-5 w-1/2").Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="mt-3">`); err != nil {
			return err
		}
		if err := Text(2).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></div>`)
		return err
	})
}

// Grid renders n cards; n <= 0 renders the default of six
func Grid(n int) templ.Component {
	if n <= 0 {
		n = defaultGrid
	}
	return status(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-3">`); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := Card().Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Table renders a rows x cols placeholder table with a header row
func Table(rows, cols int) templ.Component {
	return status(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-3">`); err != nil {
			return err
		}
		for r := 0; r <= rows; r++ {
			if _, err := fmt.Fprintf(w, `<div class="grid gap-4" style="grid-template-columns: repeat(%d, minmax(0, 1fr))">`, max(cols, 1)); err != nil {
				return err
			}
			height := "h-4"
			if r == 0 {
				height = "h-5"
			}
			for c := 0; c < cols; c++ {
				if err := Line(height).Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// status wraps placeholder content in a pulsing, screen-reader friendly region
func status(inner func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div role="status" aria-busy="true" aria-label="Loading" class="animate-pulse">`); err != nil {
			return err
		}
		if err := inner(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<span class="sr-only">Loading…</span></div>`)
		return err
	})
}

func block(class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="%s"></div>`, templ.EscapeString(class))
		return err
	})
}

func merge(base string, extra []string) string {
	return twmerge.Merge(append([]string{base}, extra...)...)
}
