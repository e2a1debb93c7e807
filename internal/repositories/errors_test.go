package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("postgres unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		err := translateError(fmt.Errorf("exec: %w", pgErr))
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.ErrorAs(t, err, &pgErr)
	})

	t.Run("postgres other error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		err := translateError(pgErr)
		assert.NotErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := translateError(assert.AnError)
		assert.Same(t, assert.AnError, err)
	})
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	if v := nullIfEmpty("a@b.c"); assert.NotNil(t, v) {
		assert.Equal(t, "a@b.c", *v)
	}
}
