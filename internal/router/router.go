// Package router matches request paths against an ordered, nested route
// table. The first route that matches wins, and a table must end in a
// route that matches every path, so Match never comes back empty.
package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/a-h/templ"
)

var (
	ErrNoFallback     = errors.New("route table has no catch-all route")
	ErrInvalidPattern = errors.New("invalid route pattern")
)

// Route maps a path pattern to a component. Patterns are made of static
// segments, ":name" segments and an optional trailing "*". Child patterns
// are relative to their parent. A matched child renders inside the
// parent's outlet (templ.GetChildren).
type Route struct {
	Path      string
	Component templ.Component
	Children  []Route
}

type compiled struct {
	route    Route
	full     string
	segments []string
	children []compiled
}

// Table is an immutable route table.
type Table struct {
	routes []compiled
}

// New compiles routes into a Table. It fails when a pattern is malformed
// or when no top-level route covers every path.
func New(routes ...Route) (*Table, error) {
	cs, err := compileAll(routes, "")
	if err != nil {
		return nil, err
	}

	total := false
	for _, c := range cs {
		if c.coversAll() {
			total = true
			break
		}
	}
	if !total {
		return nil, ErrNoFallback
	}

	return &Table{routes: cs}, nil
}

func compileAll(routes []Route, parent string) ([]compiled, error) {
	out := make([]compiled, 0, len(routes))
	for _, r := range routes {
		segs, err := splitPattern(r.Path)
		if err != nil {
			return nil, err
		}
		if r.Component == nil {
			return nil, fmt.Errorf("%w: %q has no component", ErrInvalidPattern, r.Path)
		}
		if len(segs) > 0 && segs[len(segs)-1] == "*" && len(r.Children) > 0 {
			return nil, fmt.Errorf("%w: %q is a catch-all and cannot have children", ErrInvalidPattern, r.Path)
		}

		full := strings.TrimSuffix(parent, "/") + "/" + strings.Join(segs, "/")
		children, err := compileAll(r.Children, full)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled{route: r, full: full, segments: segs, children: children})
	}
	return out, nil
}

func splitPattern(p string) ([]string, error) {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil, nil
	}
	segs := strings.Split(trimmed, "/")
	for i, s := range segs {
		switch {
		case s == "":
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, p)
		case s == "*":
			if i != len(segs)-1 {
				return nil, fmt.Errorf("%w: %q has \"*\" before the last segment", ErrInvalidPattern, p)
			}
		case strings.Contains(s, "*"):
			return nil, fmt.Errorf("%w: %q mixes \"*\" into a segment", ErrInvalidPattern, p)
		case s == ":":
			return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, p)
		}
	}
	return segs, nil
}

func (c compiled) isCatchAll() bool {
	return len(c.segments) == 1 && c.segments[0] == "*"
}

func (c compiled) coversAll() bool {
	if c.isCatchAll() {
		return true
	}
	if len(c.segments) != 0 {
		return false
	}
	for _, ch := range c.children {
		if ch.coversAll() {
			return true
		}
	}
	return false
}

// Match is the result of matching a path: the chain of routes from the
// outermost parent to the leaf, plus captured parameters.
type Match struct {
	Path   string
	Params map[string]string
	chain  []compiled
}

// NotFound reports whether the leaf is a catch-all fallback.
func (m Match) NotFound() bool {
	return len(m.chain) > 0 && m.chain[len(m.chain)-1].isCatchAll()
}

// Patterns lists the full patterns of the matched chain.
func (m Match) Patterns() []string {
	out := make([]string, len(m.chain))
	for i, c := range m.chain {
		out[i] = c.full
	}
	return out
}

// Component composes the chain: every parent renders with its child
// attached as templ children.
func (m Match) Component() templ.Component {
	return compose(m.chain)
}

func compose(chain []compiled) templ.Component {
	if len(chain) == 0 {
		return templ.NopComponent
	}
	if len(chain) == 1 {
		return chain[0].route.Component
	}
	parent, child := chain[0].route.Component, compose(chain[1:])
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, child), w)
	})
}

// Match finds the route chain for p. The path is cleaned first, so "",
// "/a/" and "/a/./b/.." are treated as "/", "/a" and "/a".
func (t *Table) Match(p string) Match {
	clean := path.Clean("/" + p)
	var segs []string
	if clean != "/" {
		segs = strings.Split(strings.TrimPrefix(clean, "/"), "/")
	}

	params := make(map[string]string)
	chain, _ := matchAll(t.routes, segs, params)
	return Match{Path: clean, Params: params, chain: chain}
}

func matchAll(routes []compiled, segs []string, params map[string]string) ([]compiled, bool) {
	for _, c := range routes {
		captured := make(map[string]string)
		rest, ok := c.matchPrefix(segs, captured)
		if !ok {
			continue
		}

		if c.isCatchAll() || (len(c.segments) > 0 && c.segments[len(c.segments)-1] == "*") {
			for k, v := range captured {
				params[k] = v
			}
			return []compiled{c}, true
		}

		if len(c.children) > 0 {
			if sub, ok := matchAll(c.children, rest, captured); ok {
				for k, v := range captured {
					params[k] = v
				}
				return append([]compiled{c}, sub...), true
			}
		}

		if len(rest) == 0 {
			for k, v := range captured {
				params[k] = v
			}
			return []compiled{c}, true
		}
	}
	return nil, false
}

// matchPrefix matches the route's own segments against the front of segs
// and returns what is left. A trailing "*" consumes the rest.
func (c compiled) matchPrefix(segs []string, params map[string]string) ([]string, bool) {
	for i, pat := range c.segments {
		if pat == "*" {
			params["*"] = strings.Join(segs[i:], "/")
			return nil, true
		}
		if i >= len(segs) {
			return nil, false
		}
		if strings.HasPrefix(pat, ":") {
			params[pat[1:]] = segs[i]
			continue
		}
		if pat != segs[i] {
			return nil, false
		}
	}
	return segs[len(c.segments):], true
}

// Routes lists every pattern in the table, depth first.
func (t *Table) Routes() []string {
	var out []string
	var walk func([]compiled)
	walk = func(cs []compiled) {
		for _, c := range cs {
			out = append(out, c.full)
			walk(c.children)
		}
	}
	walk(t.routes)
	return out
}
