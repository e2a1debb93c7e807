package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/survey-collector/internal/logger"
)

// Table names, in the order they must be emptied.
var tables = []string{"photos", "answers", "sections", "users"}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		completed_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		section_id INTEGER NOT NULL,
		question_number INTEGER NOT NULL,
		value INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		activity TEXT NOT NULL,
		path TEXT NOT NULL,
		section_id INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_user_id ON sections(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_section_id ON answers(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_section_id ON photos(section_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id BIGINT PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		completed_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		section_id BIGINT NOT NULL,
		question_number INTEGER NOT NULL,
		value INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		activity TEXT NOT NULL,
		path TEXT NOT NULL,
		section_id BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_user_id ON sections(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_section_id ON answers(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_section_id ON photos(section_id)`,
}

// CreateSchema creates the users, sections, answers and photos tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	statements := sqliteSchema
	if IsPostgres(db.DriverName()) {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	logger.Log.Infow("database schema ready", "driver", db.DriverName())
	return nil
}

// IsPostgres reports whether the driver name refers to PostgreSQL.
func IsPostgres(driverName string) bool {
	switch driverName {
	case "pgx", "postgres":
		return true
	}
	return false
}
