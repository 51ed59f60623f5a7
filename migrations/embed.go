package migrations

import "embed"

// Files holds the forward-only SQL migrations for the clinic directory schema.
//
//go:embed *.sql
var Files embed.FS
