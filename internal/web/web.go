// Package web serves the embedded browser UI: the weekly calendar, the
// project list, and the payments ledger. All data comes from the JSON API;
// the pages here are static assets.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

type Server struct{}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) StaticFS() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unrecoverable init error - server cannot function without static assets
		panic(fmt.Sprintf("failed to create static FS: %v", err))
	}
	return http.FileServer(http.FS(sub))
}

// servePage writes one embedded page.
func servePage(w http.ResponseWriter, r *http.Request, name string) {
	// http.ServeFileFS requires Go 1.22; serve the embedded file the
	// pre-1.22 way.
	f, err := http.FS(staticFS).Open("static/" + name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, fi.ModTime(), f)
}
