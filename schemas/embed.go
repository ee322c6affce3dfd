// Package schemas holds the JSON Schema documents shipped with doccheck.
package schemas

import "embed"

// Files contains every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names
const (
	PlaceholderGuard = "placeholder_guard.schema.json"
	Report           = "report.schema.json"
)
