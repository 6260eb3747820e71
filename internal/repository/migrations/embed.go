// Package migrations embeds the schema for the SQL contact stores.
package migrations

import "embed"

// SQLite contains migrations for the sqlite store.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Postgres contains migrations for the postgres store.
//
//go:embed postgres/*.sql
var Postgres embed.FS
