package ui

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/vangoframework/frame/internal/theme"
)

// BoxProps configures a Box. Padding is in theme spacing units, BorderTop
// in pixels.
type BoxProps struct {
	Padding     int
	BorderTop   int
	BorderColor string
}

// Box is a styled block container.
func Box(t theme.Theme, p BoxProps, children ...templ.Component) templ.Component {
	var decls []Decl
	if p.Padding > 0 {
		decls = append(decls, Decl{"padding", t.Spacing(p.Padding)})
	}
	if p.BorderTop > 0 {
		color := p.BorderColor
		if color == "" {
			color = t.Divider()
		}
		decls = append(decls, Decl{"border-top", strconv.Itoa(p.BorderTop) + "px solid " + color})
	}

	attrs := []attr{a("class", "frame-box")}
	if len(decls) > 0 {
		attrs = append(attrs, styleAttr(decls))
	}
	return el("div", attrs, children...)
}

// Direction is the main axis of a Stack.
type Direction string

const (
	Row    Direction = "row"
	Column Direction = "column"
)

// StackProps configures a Stack. Gap is in theme spacing units.
type StackProps struct {
	Direction Direction
	Gap       int
}

// Stack lays its children out along one axis. Column is the default.
func Stack(t theme.Theme, p StackProps, children ...templ.Component) templ.Component {
	dir := p.Direction
	if dir == "" {
		dir = Column
	}
	decls := []Decl{{"flex-direction", string(dir)}}
	if p.Gap > 0 {
		decls = append(decls, Decl{"gap", t.Spacing(p.Gap)})
	}
	return el("div", []attr{a("class", "frame-stack"), styleAttr(decls)}, children...)
}

// Link is an anchor styled by the theme's link rules.
func Link(href, label string) templ.Component {
	return el("a", []attr{a("class", theme.ClassName(theme.KindLink)), a("href", href)}, Text(label))
}

// MaxWidth is a Container breakpoint.
type MaxWidth string

const (
	MaxWidthSM MaxWidth = "sm"
	MaxWidthMD MaxWidth = "md"
	MaxWidthLG MaxWidth = "lg"
	MaxWidthXL MaxWidth = "xl"
)

var breakpoints = map[MaxWidth]string{
	MaxWidthSM: "600px",
	MaxWidthMD: "900px",
	MaxWidthLG: "1200px",
	MaxWidthXL: "1536px",
}

// Container centers its children and caps their width.
func Container(mw MaxWidth, children ...templ.Component) templ.Component {
	width, ok := breakpoints[mw]
	if !ok {
		width = breakpoints[MaxWidthLG]
		mw = MaxWidthLG
	}
	return el("div", []attr{
		a("class", "frame-container frame-container-"+string(mw)),
		styleAttr([]Decl{{"max-width", width}}),
	}, children...)
}

// Button renders a themed button.
func Button(label string, disabled bool) templ.Component {
	attrs := []attr{a("class", theme.ClassName(theme.KindButton)), a("type", "button")}
	if disabled {
		attrs = append(attrs, flag("disabled"))
	}
	return el("button", attrs, Text(label))
}

// TextField renders a labelled input with an outline.
func TextField(id, label, placeholder string) templ.Component {
	return el("div", []attr{a("class", theme.ClassName(theme.KindTextField))},
		el("label", []attr{a("for", id)}, Text(label)),
		el("input", []attr{a("id", id), a("name", id), a("placeholder", placeholder)}),
		el("fieldset", []attr{a("class", "frame-outline"), a("aria-hidden", "true")}),
	)
}
