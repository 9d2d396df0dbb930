// Package locales embeds the translation files used for API error messages.
package locales

import (
	"embed"
	"io/fs"
)

//go:embed *.yaml
var locales embed.FS

func FS() fs.FS {
	return locales
}
