package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func TestUserWriteRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.UserDB{UserID: 7, Name: "Maria", Email: "maria@example.com"}))
	require.NoError(t, repo.Upsert(ctx, models.UserDB{UserID: 7, Name: "Maria Silva", Email: "maria@example.com"}))

	var user models.UserDB
	require.NoError(t, db.Get(&user, "SELECT id, name, COALESCE(email, '') AS email FROM users WHERE id = ?", 7))

	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, 1, countRows(t, db, "users"))
}

func TestUserWriteRepository_EmptyEmailsDoNotCollide(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.UserDB{UserID: 1}))
	require.NoError(t, repo.Upsert(ctx, models.UserDB{UserID: 2}))

	var nulls int
	require.NoError(t, db.Get(&nulls, "SELECT COUNT(*) FROM users WHERE email IS NULL"))
	assert.Equal(t, 2, nulls)
}

func TestUserWriteRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.UserDB{UserID: 1, Email: "same@example.com"}))

	err := repo.Upsert(ctx, models.UserDB{UserID: 2, Email: "same@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}
