package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// SectionWriteRepository handles section write operations
type SectionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSectionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SectionWriteRepository {
	return &SectionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new section. Re-using an existing id returns ErrDuplicateKey.
func (r *SectionWriteRepository) Save(ctx context.Context, section models.SectionDB) error {
	const query = `
		INSERT INTO sections (id, user_id, completed_at)
		VALUES (?, ?, ?)
	`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{section.SectionID, section.UserID, section.CompletedAt}

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, section.SectionID, err)

	return translateError(err)
}

// SectionReadRepository handles section read operations
type SectionReadRepository struct {
	db *sqlx.DB
}

func NewSectionReadRepository(db *sqlx.DB) *SectionReadRepository {
	return &SectionReadRepository{db: db}
}

// GetOwner returns the owning user and completion time of a section,
// or nil when the section does not exist.
func (r *SectionReadRepository) GetOwner(ctx context.Context, sectionID int64) (*models.SectionOwner, error) {
	const query = `
		SELECT u.id AS user_id, u.name, COALESCE(u.email, '') AS email, s.completed_at
		FROM users u
		JOIN sections s ON u.id = s.user_id
		WHERE s.id = ?
	`

	var owner models.SectionOwner
	err := r.db.GetContext(ctx, &owner, r.db.Rebind(query), sectionID)

	logQuery(query, []any{sectionID}, owner, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &owner, nil
}
