package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/iamahmadmhd/cinemora/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			user_id TEXT UNIQUE NOT NULL,
			firstname VARCHAR(100) NOT NULL,
			lastname VARCHAR(100) NOT NULL,
			email VARCHAR(255) DEFAULT '',
			avatar TEXT DEFAULT '',
			birthdate VARCHAR(10) DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS watchlists (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
			media_id BIGINT NOT NULL,
			media_type VARCHAR(10) NOT NULL,
			title VARCHAR(500) NOT NULL,
			overview TEXT DEFAULT '',
			poster_url TEXT DEFAULT '',
			backdrop_url TEXT DEFAULT '',
			release_date VARCHAR(10) DEFAULT '',
			genres TEXT[] DEFAULT '{}',
			vote_average DOUBLE PRECISION DEFAULT 0,
			status VARCHAR(50) DEFAULT 'not watched',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE (user_id, media_id)
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_watchlists_user_id ON watchlists(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlists_created_at ON watchlists(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
