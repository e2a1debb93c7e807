package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sbilibin2017/survey-collector/internal/logger"
)

// ErrDuplicateKey is returned when an insert collides with an existing primary or unique key.
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// translateError maps driver specific constraint errors to ErrDuplicateKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, code == sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		case code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE constraint failed"):
			// extended result codes disabled
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
	}

	return err
}

// logQuery logs a statement on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// nullIfEmpty turns an empty string into SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
