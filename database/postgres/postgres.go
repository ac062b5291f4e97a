package postgres

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS blogs (
	id           BIGINT PRIMARY KEY,
	title        VARCHAR(256) NOT NULL,
	category     TEXT[] NOT NULL DEFAULT '{}',
	description  TEXT NOT NULL DEFAULT '',
	published_at TIMESTAMPTZ NOT NULL,
	cover_image  TEXT NOT NULL DEFAULT '',
	content      TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS blogs_created_at_idx ON blogs (created_at, id);
`

func New() (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsnFromEnv())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates the blogs table when it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate blogs schema: %w", err)
	}
	return nil
}

func dsnFromEnv() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "camonk"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
