// Package templates embeds the dashboard's HTML pages.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
