package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// PhotoWriteRepository handles photo write operations
type PhotoWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPhotoWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a photo row referencing an already stored file.
func (r *PhotoWriteRepository) Save(ctx context.Context, photo models.PhotoDB) error {
	const query = `
		INSERT INTO photos (user_id, activity, path, section_id)
		VALUES (?, ?, ?, ?)
	`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{photo.UserID, photo.Activity, photo.Path, photo.SectionID}

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, photo.Path, err)

	return translateError(err)
}

// PhotoReadRepository handles photo read operations
type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// ListPathsBySection returns the stored relative paths of a section's photos.
func (r *PhotoReadRepository) ListPathsBySection(ctx context.Context, sectionID int64) ([]string, error) {
	const query = `
		SELECT path
		FROM photos
		WHERE section_id = ?
		ORDER BY id
	`

	paths := []string{}
	err := r.db.SelectContext(ctx, &paths, r.db.Rebind(query), sectionID)

	logQuery(query, []any{sectionID}, paths, err)

	if err != nil {
		return nil, err
	}
	return paths, nil
}
