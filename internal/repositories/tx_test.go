package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func TestTxManager_Commit(t *testing.T) {
	db := newTestDB(t)
	tm := NewTxManager(db)
	users := NewUserWriteRepository(db, GetTxFromContext)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.NotNil(t, GetTxFromContext(ctx))
		return users.Upsert(ctx, models.UserDB{UserID: 1, Name: "Ana"})
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, db, "users"))
}

func TestTxManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTxManager(db)
	users := NewUserWriteRepository(db, GetTxFromContext)
	failure := errors.New("later step failed")

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		require.NoError(t, users.Upsert(ctx, models.UserDB{UserID: 1, Name: "Ana"}))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	assert.Equal(t, 0, countRows(t, db, "users"))
}

func TestTxManager_BeginError(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Close db so Begin fails
	mockDB.Close()

	called := false
	err = NewTxManager(sqlxDB).Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestTxManager_CommitError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	err = NewTxManager(sqlx.NewDb(mockDB, "sqlmock")).Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_Panic(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tm := NewTxManager(sqlx.NewDb(mockDB, "sqlmock"))

	assert.Panics(t, func() {
		_ = tm.Do(context.Background(), func(ctx context.Context) error {
			panic("test panic")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_UseTransactionFromContext(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sections").
		WithArgs(int64(42), int64(7), "2025-01-02 10:00:00").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO answers").
		WithArgs(int64(7), int64(42), int64(1), int64(5)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	sections := NewSectionWriteRepository(sqlxDB, GetTxFromContext)
	answers := NewAnswerWriteRepository(sqlxDB, GetTxFromContext)

	err = NewTxManager(sqlxDB).Do(context.Background(), func(ctx context.Context) error {
		if err := sections.Save(ctx, models.SectionDB{SectionID: 42, UserID: 7, CompletedAt: "2025-01-02 10:00:00"}); err != nil {
			return err
		}
		return answers.SaveAll(ctx, 7, 42, []models.Answer{{QuestionNumber: 1, Value: 5}, {QuestionNumber: 2, Value: 3}})
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
