package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database with the schema applied.
// A single connection keeps the in-memory database alive for the whole test.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateSchema(context.Background(), db))
	return db
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
