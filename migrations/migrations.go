// Package migrations embeds the goose SQL migrations applied on boot.
package migrations

import "embed"

// Dir is the directory inside FS holding the migration files.
const Dir = "."

//go:embed *.sql
var FS embed.FS
