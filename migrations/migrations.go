// Package migrations embeds the goose SQL migrations so the server binary
// can bootstrap its own schema. All DDL uses IF NOT EXISTS, keeping the
// bootstrap idempotent against an existing database.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
