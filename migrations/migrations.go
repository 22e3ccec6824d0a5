// AngelaMos | 2026
// migrations.go

// Package migrations holds the embedded goose migration files applied at
// startup when database.migrate_on_start is enabled.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
