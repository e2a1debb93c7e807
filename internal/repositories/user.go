package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Upsert inserts the user or overwrites name and email of an existing one.
// An empty email is stored as NULL.
func (r *UserWriteRepository) Upsert(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email
	`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{user.UserID, user.Name, nullIfEmpty(user.Email)}

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return translateError(err)
}
