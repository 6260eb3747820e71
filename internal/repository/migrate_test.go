package repository

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	require.Equal(t, "\nCREATE TABLE a (id INTEGER);\n", ExtractUpMigration(content))
	require.Equal(t, "SELECT 1;", ExtractUpMigration("SELECT 1;"))
}

func TestApplySQLiteMigrations_AppliesOnce(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n")},
		"m/002_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"m/readme.md": {Data: []byte("ignored")},
	}
	ctx := context.Background()

	applied, err := ApplySQLiteMigrations(ctx, db, fsys, "m")
	require.NoError(t, err)
	require.Equal(t, 2, applied)

	applied, err = ApplySQLiteMigrations(ctx, db, fsys, "m")
	require.NoError(t, err)
	require.Equal(t, 0, applied)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+migrationTable).Scan(&count))
	require.Equal(t, 2, count)
}

func TestApplySQLiteMigrations_NilDB(t *testing.T) {
	_, err := ApplySQLiteMigrations(context.Background(), nil, fstest.MapFS{}, ".")
	require.ErrorIs(t, err, ErrNotConfigured)
}
