package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// ListingReadRepository reads the dashboard listing
type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// List returns one row per (user, section) pair, including users without
// sections, newest section first and users without sections last.
func (r *ListingReadRepository) List(ctx context.Context) ([]models.ListingRow, error) {
	const query = `
		SELECT
			u.id AS user_id,
			u.name,
			COALESCE(u.email, '') AS email,
			s.id AS section_id,
			s.completed_at,
			(SELECT COUNT(*) FROM answers a WHERE a.section_id = s.id) AS total_answers,
			(SELECT COUNT(*) FROM photos p WHERE p.section_id = s.id) AS total_photos
		FROM users u
		LEFT JOIN sections s ON u.id = s.user_id
		ORDER BY
			CASE WHEN s.id IS NULL THEN 1 ELSE 0 END,
			s.completed_at DESC,
			s.id DESC,
			u.id
	`

	rows := []models.ListingRow{}
	err := r.db.SelectContext(ctx, &rows, query)

	logQuery(query, nil, len(rows), err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}
