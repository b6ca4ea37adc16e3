// Package migrations ships the schema files applied by the migration runner.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
