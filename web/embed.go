// Package web holds the browser storefront, compiled into the service binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// IndexHTML returns the storefront entry page.
func IndexHTML() ([]byte, error) {
	return content.ReadFile("static/index.html")
}

// Assets serves the files under static/ (scripts, styles).
func Assets() http.FileSystem {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// static is embedded at build time, so this cannot fail at runtime
		panic(err)
	}
	return http.FS(sub)
}
