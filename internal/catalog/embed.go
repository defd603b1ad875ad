// Package catalog provides the compiled-in style table mapping style codes to
// generation parameters and rendering themes.
package catalog

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
