// Package assets embeds the host document and the static files the shell
// links to.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed all:static
var staticFS embed.FS

// HostDocument returns the embedded host page. It carries the
// <div id="root"> mount point.
func HostDocument() []byte {
	b, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic("assets: embedded index.html missing: " + err.Error())
	}
	return b
}

// FS returns the static tree rooted at "static".
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("assets: " + err.Error())
	}
	return sub
}

// Handler serves the embedded static files. Mount it under a prefix with
// http.StripPrefix. Documents are never cached; everything else is.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if p == "" || p == "/" || strings.HasSuffix(p, ".html") || !strings.Contains(p, ".") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=86400")
		}
		fileServer.ServeHTTP(w, r)
	})
}
