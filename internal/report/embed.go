package report

import "embed"

// Templates embeds the report HTML templates.
//
//go:embed templates/*.html
var Templates embed.FS
