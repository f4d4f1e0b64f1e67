// Package web embeds the ApexFlow dashboard, a single-page client served by
// the API process itself.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:static
var content embed.FS

// Static returns the dashboard assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// The static directory is compiled in; a failure here is a
		// broken build, not a runtime condition.
		panic(err)
	}

	return http.FS(sub)
}
