package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// AnswerWriteRepository handles answer write operations
type AnswerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAnswerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AnswerWriteRepository {
	return &AnswerWriteRepository{db: db, txGetter: txGetter}
}

// SaveAll inserts one row per answer and stops at the first failure.
func (r *AnswerWriteRepository) SaveAll(ctx context.Context, userID, sectionID int64, answers []models.Answer) error {
	const query = `
		INSERT INTO answers (user_id, section_id, question_number, value)
		VALUES (?, ?, ?, ?)
	`

	ex := executor(ctx, r.db, r.txGetter)
	bound := ex.Rebind(query)

	for i, a := range answers {
		args := []any{userID, sectionID, a.QuestionNumber, a.Value}
		_, err := ex.ExecContext(ctx, bound, args...)
		logQuery(query, args, i, err)
		if err != nil {
			return translateError(err)
		}
	}

	return nil
}

// AnswerReadRepository handles answer read operations
type AnswerReadRepository struct {
	db *sqlx.DB
}

func NewAnswerReadRepository(db *sqlx.DB) *AnswerReadRepository {
	return &AnswerReadRepository{db: db}
}

// ListBySection returns the answers of a section ordered by question number.
func (r *AnswerReadRepository) ListBySection(ctx context.Context, sectionID int64) ([]models.Answer, error) {
	const query = `
		SELECT question_number, value
		FROM answers
		WHERE section_id = ?
		ORDER BY question_number, id
	`

	answers := []models.Answer{}
	err := r.db.SelectContext(ctx, &answers, r.db.Rebind(query), sectionID)

	logQuery(query, []any{sectionID}, len(answers), err)

	if err != nil {
		return nil, err
	}
	return answers, nil
}
