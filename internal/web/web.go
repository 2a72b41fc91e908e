// Package web serves the embedded single-page map UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// uiCSP relaxes the API's default-src 'none' policy for UI responses:
// Leaflet ships from unpkg and the map tiles from openstreetmap.org.
const uiCSP = "default-src 'self'; " +
	"script-src 'self' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline' https://unpkg.com; " +
	"img-src 'self' data: https://unpkg.com https://*.tile.openstreetmap.org; " +
	"connect-src 'self'"

// Handler returns the static file handler for the map UI. It must be
// mounted outside the JSON content-type middleware so the file server
// picks content types from file extensions.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embedded tree is fixed at build time.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", uiCSP)
		fileServer.ServeHTTP(w, r)
	})
}
