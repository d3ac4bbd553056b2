package migrations

import "embed"

// FS contains the embedded goose migrations for the bot database.
//
//go:embed *.sql
var FS embed.FS
