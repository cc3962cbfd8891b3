// Package shell mounts the application into a host HTML document and
// renders it for a request path.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vangoframework/frame/internal/router"
	"github.com/vangoframework/frame/internal/theme"
	"github.com/vangoframework/frame/internal/ui"
)

// ErrMountPointMissing is returned by Mount when the host document has no
// element with the mount id.
var ErrMountPointMissing = errors.New("mount point missing from host document")

// DefaultMountID is the id of the element the application attaches to.
const DefaultMountID = "root"

// DefaultStylesheet is where the theme stylesheet is served.
const DefaultStylesheet = "/static/theme.css"

const outletMarker = "frame:outlet"

// State is the lifecycle state of an App.
type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	switch s {
	case Mounted:
		return "mounted"
	default:
		return "unmounted"
	}
}

type options struct {
	theme      theme.Theme
	themeSet   bool
	table      *router.Table
	mountID    string
	stylesheet string
	logger     *slog.Logger
}

// Option configures Mount.
type Option func(*options)

// WithTheme replaces the default theme.
func WithTheme(t theme.Theme) Option {
	return func(o *options) { o.theme, o.themeSet = t, true }
}

// WithTable replaces the default route table.
func WithTable(t *router.Table) Option {
	return func(o *options) { o.table = t }
}

// WithMountID sets the id of the mount element.
func WithMountID(id string) Option {
	return func(o *options) { o.mountID = id }
}

// WithStylesheet sets the URL the theme stylesheet is linked from.
func WithStylesheet(url string) Option {
	return func(o *options) { o.stylesheet = url }
}

// WithLogger sets the logger used during mount.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// App is a mounted application. It is safe for concurrent use: the host
// document is split once at mount and every render only writes.
type App struct {
	theme  theme.Theme
	table  *router.Table
	prefix string
	suffix string
	state  State
}

// Routes is the application's route table: the layout at "/" with a
// catch-all not found page in its outlet.
func Routes(t theme.Theme) []router.Route {
	return []router.Route{
		{
			Path:      "/",
			Component: ui.Layout(t),
			Children: []router.Route{
				{Path: "*", Component: ui.NotFound()},
			},
		},
	}
}

// Mount bootstraps the application against host. It locates the mount
// point, installs the theme's stylesheets into <head> and prepares the
// route table. Without a mount point nothing is rendered and
// ErrMountPointMissing is returned.
func Mount(host []byte, opts ...Option) (*App, error) {
	o := options{
		mountID:    DefaultMountID,
		stylesheet: DefaultStylesheet,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.themeSet {
		o.theme = theme.Default()
	}

	doc, err := html.Parse(bytes.NewReader(host))
	if err != nil {
		return nil, fmt.Errorf("parse host document: %w", err)
	}

	mount := findByID(doc, o.mountID)
	if mount == nil {
		return nil, fmt.Errorf("%w: no element with id %q", ErrMountPointMissing, o.mountID)
	}

	if err := o.theme.Validate(); err != nil {
		o.logger.Warn("theme has invalid colors", "error", err)
	}

	if head := findAtom(doc, atom.Head); head != nil {
		installHead(head, o.theme, o.stylesheet)
	}

	if o.table == nil {
		o.table, err = router.New(Routes(o.theme)...)
		if err != nil {
			return nil, fmt.Errorf("build route table: %w", err)
		}
	}

	for c := mount.FirstChild; c != nil; c = mount.FirstChild {
		mount.RemoveChild(c)
	}
	mount.AppendChild(&html.Node{Type: html.CommentNode, Data: outletMarker})

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render host document: %w", err)
	}
	prefix, suffix, ok := strings.Cut(buf.String(), "<!--"+outletMarker+"-->")
	if !ok {
		return nil, fmt.Errorf("%w: outlet marker lost while rendering", ErrMountPointMissing)
	}

	o.logger.Debug("application mounted", "mount_id", o.mountID, "routes", len(o.table.Routes()))

	return &App{
		theme:  o.theme,
		table:  o.table,
		prefix: prefix,
		suffix: suffix,
		state:  Mounted,
	}, nil
}

// State reports the lifecycle state. A nil App is unmounted.
func (a *App) State() State {
	if a == nil {
		return Unmounted
	}
	return a.state
}

// Theme returns the theme the app was mounted with.
func (a *App) Theme() theme.Theme { return a.theme }

// Table returns the route table.
func (a *App) Table() *router.Table { return a.table }

// Render writes the host document with the tree matched for path attached
// inside the mount point. The tree is rendered fully before anything is
// written, so a failing component never yields a partial document.
func (a *App) Render(ctx context.Context, w io.Writer, path string) (router.Match, error) {
	if a.State() != Mounted {
		return router.Match{}, errors.New("render before mount")
	}

	m := a.table.Match(path)

	var body bytes.Buffer
	if err := m.Component().Render(ctx, &body); err != nil {
		return m, fmt.Errorf("render %s: %w", m.Path, err)
	}

	var out bytes.Buffer
	out.Grow(len(a.prefix) + body.Len() + len(a.suffix))
	out.WriteString(a.prefix)
	out.Write(body.Bytes())
	out.WriteString(a.suffix)

	if _, err := out.WriteTo(w); err != nil {
		return m, err
	}
	return m, nil
}

func installHead(head *html.Node, t theme.Theme, stylesheet string) {
	head.AppendChild(element(atom.Meta, "name", "theme-color", "content", t.Primary().Main()))
	for _, href := range t.Typography().Assets {
		head.AppendChild(element(atom.Link, "rel", "stylesheet", "href", href))
	}
	head.AppendChild(element(atom.Link, "rel", "stylesheet", "href", stylesheet))
}

func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, at := range n.Attr {
			if at.Key == "id" && at.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAtom(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAtom(c, a); found != nil {
			return found
		}
	}
	return nil
}
