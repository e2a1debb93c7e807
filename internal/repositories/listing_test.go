package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func seedListing(ctx context.Context, t *testing.T, s *testStores) {
	t.Helper()

	require.NoError(t, s.users.Upsert(ctx, models.UserDB{UserID: 1, Name: "Ana", Email: "ana@example.com"}))
	require.NoError(t, s.users.Upsert(ctx, models.UserDB{UserID: 2, Name: "Bruno"}))
	require.NoError(t, s.users.Upsert(ctx, models.UserDB{UserID: 3, Name: "Carla"}))

	require.NoError(t, s.sections.Save(ctx, models.SectionDB{SectionID: 10, UserID: 1, CompletedAt: "2025-01-01 09:00:00"}))
	require.NoError(t, s.sections.Save(ctx, models.SectionDB{SectionID: 11, UserID: 1, CompletedAt: "2025-03-01 09:00:00"}))
	require.NoError(t, s.sections.Save(ctx, models.SectionDB{SectionID: 20, UserID: 2, CompletedAt: "2025-02-01 09:00:00"}))

	require.NoError(t, s.answers.SaveAll(ctx, 1, 10, []models.Answer{{QuestionNumber: 1, Value: 1}, {QuestionNumber: 2, Value: 2}}))
	require.NoError(t, s.photos.Save(ctx, models.PhotoDB{UserID: 1, Activity: "a", Path: "uploads/a.jpg", SectionID: 10}))
}

// testStores groups the write repositories used to seed fixtures.
type testStores struct {
	users    *UserWriteRepository
	sections *SectionWriteRepository
	answers  *AnswerWriteRepository
	photos   *PhotoWriteRepository
}

func TestListingReadRepository_List(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedListing(ctx, t, &testStores{
		users:    NewUserWriteRepository(db, GetTxFromContext),
		sections: NewSectionWriteRepository(db, GetTxFromContext),
		answers:  NewAnswerWriteRepository(db, GetTxFromContext),
		photos:   NewPhotoWriteRepository(db, GetTxFromContext),
	})

	rows, err := NewListingReadRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	var order []int64
	for _, r := range rows[:3] {
		require.NotNil(t, r.SectionID)
		order = append(order, *r.SectionID)
	}
	assert.Equal(t, []int64{11, 20, 10}, order, "newest section first")

	last := rows[3]
	assert.Equal(t, int64(3), last.UserID, "users without sections come last")
	assert.Nil(t, last.SectionID)
	assert.Nil(t, last.CompletedAt)
	assert.Zero(t, last.TotalAnswers)
	assert.Zero(t, last.TotalPhotos)

	oldest := rows[2]
	assert.Equal(t, "ana@example.com", oldest.Email)
	assert.Equal(t, 2, oldest.TotalAnswers)
	assert.Equal(t, 1, oldest.TotalPhotos)

	assert.Equal(t, "", rows[1].Email, "NULL email is read back as empty string")
}

func TestListingReadRepository_Empty(t *testing.T) {
	db := newTestDB(t)

	rows, err := NewListingReadRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
