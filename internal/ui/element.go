// Package ui holds the presentational components of the shell.
//
// Every component is a templ.Component built from plain Go functions.
// Components that need styling take the theme as an explicit argument.
package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type attr struct {
	key   string
	value string
	flag  bool // boolean attribute, rendered without a value
}

func a(key, value string) attr { return attr{key: key, value: value} }

func flag(key string) attr { return attr{key: key, flag: true} }

// Decl is a single inline style declaration.
type Decl struct {
	Property string
	Value    string
}

func styleAttr(decls []Decl) attr {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return a("style", strings.Join(parts, "; "))
}

// el renders tag with attrs around children.
func el(tag string, attrs []attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<")
		b.WriteString(tag)
		for _, at := range attrs {
			b.WriteString(" ")
			b.WriteString(at.key)
			if at.flag {
				continue
			}
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(at.value))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if isVoid(tag) {
			return nil
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders s, escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func isVoid(tag string) bool {
	switch tag {
	case "input", "br", "hr", "img", "link", "meta":
		return true
	}
	return false
}
