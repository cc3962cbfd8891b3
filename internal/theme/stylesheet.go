package theme

import (
	"fmt"
	"strings"
)

// decl is a property/value pair in emission order.
type decl struct{ prop, value string }

type sheet struct{ b strings.Builder }

func (s *sheet) block(selector string, decls ...decl) {
	fmt.Fprintf(&s.b, "%s {\n", selector)
	for _, d := range decls {
		fmt.Fprintf(&s.b, "  %s: %s;\n", d.prop, d.value)
	}
	s.b.WriteString("}\n")
}

// Stylesheet renders the baseline reset, the palette variables, the
// component defaults and finally the theme overrides. Overrides come last
// so they win over component defaults of equal specificity.
func (t Theme) Stylesheet() string {
	var s sheet

	vars := make([]decl, 0, len(t.primary.Shades())+3)
	for _, k := range t.primary.Shades() {
		vars = append(vars, decl{"--frame-primary-" + strings.ToLower(string(k)), t.primary.Shade(k)})
	}
	vars = append(vars,
		decl{"--frame-background", t.background},
		decl{"--frame-text", t.text},
		decl{"--frame-divider", t.divider},
	)
	s.block(":root", vars...)

	// Baseline
	s.block("html",
		decl{"-webkit-font-smoothing", "antialiased"},
		decl{"-moz-osx-font-smoothing", "grayscale"},
		decl{"box-sizing", "border-box"},
		decl{"-webkit-text-size-adjust", "100%"},
	)
	s.block("*, *::before, *::after", decl{"box-sizing", "inherit"})
	s.block("strong, b", decl{"font-weight", "700"})
	s.block("body",
		decl{"margin", "0"},
		decl{"color", t.text},
		decl{"background-color", t.background},
		decl{"font-family", t.typography.FontFamily},
		decl{"font-weight", "400"},
		decl{"font-size", "1rem"},
		decl{"line-height", "1.5"},
	)

	// Layout primitives
	s.block(".frame-container",
		decl{"width", "100%"},
		decl{"margin-left", "auto"},
		decl{"margin-right", "auto"},
		decl{"padding-left", t.Spacing(3)},
		decl{"padding-right", t.Spacing(3)},
	)
	s.block(".frame-stack", decl{"display", "flex"})

	// Link
	link := "." + ClassName(KindLink)
	switch t.underline {
	case UnderlineNone:
		s.block(link, decl{"color", t.primary.Main()}, decl{"text-decoration", "none"})
	case UnderlineHover:
		s.block(link, decl{"color", t.primary.Main()}, decl{"text-decoration", "none"})
		s.block(link+":hover", decl{"text-decoration", "underline"})
	default:
		s.block(link, decl{"color", t.primary.Main()}, decl{"text-decoration", "underline"})
	}

	// Button
	button := "." + ClassName(KindButton)
	s.block(button,
		decl{"background-color", t.primary.Main()},
		decl{"color", t.ContrastText(t.primary.Main())},
		decl{"border", "0"},
		decl{"border-radius", "4px"},
		decl{"padding", "6px 16px"},
		decl{"font", "inherit"},
		decl{"font-weight", "500"},
		decl{"text-transform", "uppercase"},
		decl{"cursor", "pointer"},
	)
	s.block(button+":disabled",
		decl{"color", "rgba(255, 255, 255, 0.3)"},
		decl{"background-color", "rgba(255, 255, 255, 0.12)"},
		decl{"cursor", "default"},
	)

	// TextField
	field := "." + ClassName(KindTextField)
	s.block(field, decl{"position", "relative"}, decl{"display", "inline-flex"}, decl{"flex-direction", "column"})
	s.block(field+" .frame-outline", decl{"border", "1px solid rgba(255, 255, 255, 0.23)"}, decl{"border-radius", "4px"})
	s.block(field+" label", decl{"color", "rgba(255, 255, 255, 0.7)"})
	s.block(field+" input::placeholder", decl{"color", "currentColor"}, decl{"opacity", "0.42"})

	for _, k := range t.Kinds() {
		for _, r := range t.overrides[k] {
			s.block(scope(k, r.Selector), decl{r.Property, r.Value})
		}
	}

	return s.b.String()
}

func scope(k Kind, selector string) string {
	class := "." + ClassName(k)
	switch {
	case selector == "":
		return class
	case strings.Contains(selector, "&"):
		return strings.ReplaceAll(selector, "&", class)
	default:
		return class + " " + selector
	}
}
