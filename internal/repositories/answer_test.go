package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func TestAnswerRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	writer := NewAnswerWriteRepository(db, GetTxFromContext)
	reader := NewAnswerReadRepository(db)

	require.NoError(t, writer.SaveAll(ctx, 7, 42, []models.Answer{
		{QuestionNumber: 3, Value: 1},
		{QuestionNumber: 1, Value: 5},
		{QuestionNumber: 2, Value: 4},
	}))
	// duplicates of a question accumulate
	require.NoError(t, writer.SaveAll(ctx, 7, 42, []models.Answer{{QuestionNumber: 1, Value: 2}}))
	require.NoError(t, writer.SaveAll(ctx, 7, 43, []models.Answer{{QuestionNumber: 1, Value: 9}}))

	answers, err := reader.ListBySection(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []models.Answer{
		{QuestionNumber: 1, Value: 5},
		{QuestionNumber: 1, Value: 2},
		{QuestionNumber: 2, Value: 4},
		{QuestionNumber: 3, Value: 1},
	}, answers)

	empty, err := reader.ListBySection(ctx, 100)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAnswerWriteRepository_SaveAllEmpty(t *testing.T) {
	db := newTestDB(t)

	err := NewAnswerWriteRepository(db, GetTxFromContext).SaveAll(context.Background(), 1, 1, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, countRows(t, db, "answers"))
}
