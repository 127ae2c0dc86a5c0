// Package web holds the browser-facing shell. All Markdown rendering happens
// in the page scripts; the server only ever serves raw source.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
