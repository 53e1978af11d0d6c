// Package web holds the stylesheet and images served under /assets/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css static/*.svg
var staticFS embed.FS

// Assets returns the static files rooted at the asset directory, so
// "site.css" maps to /assets/site.css.
func Assets() fs.FS {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return assets
}
