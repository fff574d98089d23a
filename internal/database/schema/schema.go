// Package schema embeds the goose migration files for the local store.
package schema

import "embed"

// Migrations holds the goose migration scripts.
//
//go:embed migrations/*.sql
var Migrations embed.FS
