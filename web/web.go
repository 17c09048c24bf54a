// Package web embeds the static frontend.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var assets embed.FS

// Static returns the frontend filesystem rooted at the asset directory.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
