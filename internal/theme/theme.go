// Package theme defines the visual configuration shared by every rendered
// component: palette, per-component style overrides and typography.
//
// A Theme is built once with New or Default and never mutated afterwards.
// It is passed explicitly to the components that need it.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies a component for style overrides.
type Kind string

const (
	KindLink      Kind = "Link"
	KindButton    Kind = "Button"
	KindTextField Kind = "TextField"
)

// ClassName is the CSS class every component of kind k carries.
func ClassName(k Kind) string {
	return "frame-" + strings.ToLower(string(k))
}

// Underline is the default link decoration.
type Underline string

const (
	UnderlineNone   Underline = "none"
	UnderlineHover  Underline = "hover"
	UnderlineAlways Underline = "always"
)

// Rule is one CSS declaration scoped to a component.
// An "&" in Selector stands for the component's own class; a selector
// without "&" targets descendants.
type Rule struct {
	Selector string
	Property string
	Value    string
}

// Typography describes the font family and its static font assets.
type Typography struct {
	FontFamily string
	// Assets are stylesheet URLs, one per loaded font weight.
	Assets []string
}

// Theme is the immutable visual configuration.
type Theme struct {
	primary    ColorScale
	background string
	text       string
	divider    string
	underline  Underline
	overrides  map[Kind][]Rule
	typography Typography
	spacing    int
}

// Option configures a Theme under construction.
type Option func(*Theme)

// WithPrimary sets the primary accent scale.
func WithPrimary(s ColorScale) Option {
	return func(t *Theme) { t.primary = s }
}

// WithBackground sets the default page background.
func WithBackground(c string) Option {
	return func(t *Theme) { t.background = c }
}

// WithText sets the primary text color.
func WithText(c string) Option {
	return func(t *Theme) { t.text = c }
}

// WithDivider sets the border color used by bordered boxes.
func WithDivider(c string) Option {
	return func(t *Theme) { t.divider = c }
}

// WithLinkUnderline sets the default link decoration.
func WithLinkUnderline(u Underline) Option {
	return func(t *Theme) { t.underline = u }
}

// WithOverride appends style rules for a component kind.
func WithOverride(k Kind, rules ...Rule) Option {
	return func(t *Theme) { t.overrides[k] = append(t.overrides[k], rules...) }
}

// WithTypography sets the font family and font assets.
func WithTypography(ty Typography) Option {
	return func(t *Theme) { t.typography = ty }
}

// New builds a Theme from the library defaults plus opts.
func New(opts ...Option) Theme {
	t := Theme{
		primary:    NewScale("blue", map[Shade]string{Shade500: "#1976d2"}),
		background: "#ffffff",
		text:       "rgba(0, 0, 0, 0.87)",
		divider:    Grey.Shade(Shade300),
		underline:  UnderlineAlways,
		overrides:  make(map[Kind][]Rule),
		typography: Typography{FontFamily: `"Roboto", "Helvetica", "Arial", sans-serif`},
		spacing:    8,
	}
	for _, opt := range opts {
		opt(&t)
	}
	t.typography.Assets = append([]string(nil), t.typography.Assets...)
	return t
}

// Default returns the application theme: yellow accent on a black page
// with white text, plain links, a yellow disabled button and white text
// field chrome.
func Default() Theme {
	const white = "#FFFFFF"
	return New(
		WithPrimary(Yellow),
		WithBackground("#000000"),
		WithText(white),
		WithDivider(Grey.Shade(Shade700)),
		WithLinkUnderline(UnderlineNone),
		WithOverride(KindTextField,
			Rule{Selector: ".frame-outline", Property: "border-color", Value: white},
			Rule{Selector: "label", Property: "color", Value: white},
			Rule{Selector: "input::placeholder", Property: "color", Value: white},
		),
		WithOverride(KindButton,
			Rule{Selector: "&:disabled", Property: "background-color", Value: Yellow.Shade(Shade600)},
		),
		WithTypography(Typography{
			FontFamily: `"Roboto", "Helvetica", "Arial", sans-serif`,
			Assets: []string{
				"/static/fonts/roboto-400.css",
				"/static/fonts/roboto-700.css",
			},
		}),
	)
}

func (t Theme) Primary() ColorScale { return t.primary }
func (t Theme) Background() string { return t.background }
func (t Theme) Text() string { return t.text }
func (t Theme) Divider() string { return t.divider }
func (t Theme) LinkUnderline() Underline { return t.underline }

// Typography returns a copy of the typography settings.
func (t Theme) Typography() Typography {
	ty := t.typography
	ty.Assets = append([]string(nil), ty.Assets...)
	return ty
}

// Spacing converts n spacing units into a CSS length.
func (t Theme) Spacing(n int) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%dpx", n*t.spacing)
}

// Override returns a copy of the rules registered for k.
func (t Theme) Override(k Kind) []Rule {
	return append([]Rule(nil), t.overrides[k]...)
}

// Kinds lists the component kinds that carry overrides, sorted.
func (t Theme) Kinds() []Kind {
	kinds := make([]Kind, 0, len(t.overrides))
	for k := range t.overrides {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
