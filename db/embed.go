// Package db embeds the SQL migration files so production builds can run
// migrations without shipping the db/migrations directory alongside the
// binary.
package db

import "embed"

// Migrations holds the SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
