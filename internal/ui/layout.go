package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/frame/internal/theme"
)

// NotFoundText is the content rendered for any unmatched path.
const NotFoundText = "404 - Page Not Found"

// Header is the navigation bar at the top of every page.
func Header(t theme.Theme) templ.Component {
	return el("header", []attr{a("class", "frame-header")},
		Box(t, BoxProps{Padding: 2},
			Stack(t, StackProps{Direction: Row, Gap: 2},
				Link("/", "Frame"),
			),
		),
	)
}

// Footer is a bordered box of link groups.
func Footer(t theme.Theme) templ.Component {
	return el("footer", []attr{a("class", "frame-footer")},
		Box(t, BoxProps{Padding: 4, BorderTop: 1, BorderColor: t.Divider()},
			Stack(t, StackProps{Direction: Row, Gap: 4},
				Stack(t, StackProps{Gap: 1},
					Link("/", "Home"),
				),
			),
		),
	)
}

// Layout frames the matched page: header, outlet, footer. The outlet is
// whatever child the router attached with templ.WithChildren, or nothing.
func Layout(t theme.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		outlet := templ.GetChildren(ctx)
		if outlet == nil {
			outlet = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		main := el("main", []attr{a("class", "frame-outlet")}, outlet)
		return Container(MaxWidthLG, Header(t), main, Footer(t)).Render(ctx, w)
	})
}

// NotFound is the fallback page.
func NotFound() templ.Component {
	return el("div", nil, Text(NotFoundText))
}
