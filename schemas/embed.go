// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations holds one directory of ordered .sql files per driver: mysql and sqlite.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS
