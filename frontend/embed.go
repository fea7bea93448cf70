// Package frontend embeds the built single-page application served by the
// HTTP controller.
package frontend

import "embed"

//go:embed all:dist
var StaticFiles embed.FS
