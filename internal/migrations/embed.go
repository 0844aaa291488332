// Package migrations embeds the goose SQL migrations for the attendance
// store schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
