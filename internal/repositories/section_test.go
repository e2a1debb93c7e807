package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func TestSectionRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, GetTxFromContext)
	writer := NewSectionWriteRepository(db, GetTxFromContext)
	reader := NewSectionReadRepository(db)

	require.NoError(t, users.Upsert(ctx, models.UserDB{UserID: 7, Name: "Maria"}))
	require.NoError(t, writer.Save(ctx, models.SectionDB{SectionID: 42, UserID: 7, CompletedAt: "2025-01-02 10:00:00"}))

	t.Run("DuplicateID", func(t *testing.T) {
		err := writer.Save(ctx, models.SectionDB{SectionID: 42, UserID: 7, CompletedAt: "2025-01-03 10:00:00"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, 1, countRows(t, db, "sections"))
	})

	t.Run("GetOwner", func(t *testing.T) {
		owner, err := reader.GetOwner(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, int64(7), owner.UserID)
		assert.Equal(t, "Maria", owner.Name)
		assert.Equal(t, "", owner.Email)
		assert.Equal(t, "2025-01-02 10:00:00", owner.CompletedAt)
	})

	t.Run("GetOwnerNotFound", func(t *testing.T) {
		owner, err := reader.GetOwner(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, owner)
	})
}
