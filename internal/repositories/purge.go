package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PurgeRepository empties every table
type PurgeRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurgeRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurgeRepository {
	return &PurgeRepository{db: db, txGetter: txGetter}
}

// DeleteAll removes all rows, child tables first.
func (r *PurgeRepository) DeleteAll(ctx context.Context) error {
	ex := executor(ctx, r.db, r.txGetter)

	for _, table := range tables {
		query := "DELETE FROM " + table
		res, err := ex.ExecContext(ctx, query)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logQuery(query, nil, rowsAffected, err)

		if err != nil {
			return fmt.Errorf("purge %s: %w", table, err)
		}
	}

	return nil
}
