package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// second run must be a no-op
	require.NoError(t, CreateSchema(context.Background(), db))

	for _, table := range tables {
		assert.Equal(t, 0, countRows(t, db, table), table)
	}
}

func TestCreateSchema_ExecError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(assert.AnError)

	err = CreateSchema(context.Background(), sqlx.NewDb(mockDB, "sqlmock"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to create schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("pgx"))
	assert.True(t, IsPostgres("postgres"))
	assert.False(t, IsPostgres("sqlite"))
	assert.False(t, IsPostgres("sqlmock"))
}
