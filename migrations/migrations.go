// Package migrations embeds the goose SQL migrations so the binary can
// bring the schema up to date on start without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
