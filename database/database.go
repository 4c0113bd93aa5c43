package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/oumar782/Oumarbackend/config"
)

// Connect opens the PostgreSQL pool and verifies connectivity.
func Connect(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	return db, nil
}

func Close(db *sqlx.DB, l *zap.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		l.Error("closing database", zap.Error(err))
	}
}

// CreateTables bootstraps the schema. Statements are idempotent.
func CreateTables(db *sqlx.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{
			name: "contact",
			query: `
			CREATE TABLE IF NOT EXISTS contact (
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL,
				email VARCHAR(100) NOT NULL,
				message TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_contact_email ON contact(email);
			CREATE INDEX IF NOT EXISTS idx_contact_created_at ON contact(created_at);`,
		},
		{
			name: "projects",
			query: `
			CREATE TABLE IF NOT EXISTS projects (
				id SERIAL PRIMARY KEY,
				title VARCHAR(150) NOT NULL,
				description TEXT NOT NULL,
				image TEXT,
				technologies TEXT[],
				featured BOOLEAN NOT NULL DEFAULT false,
				stats JSONB,
				slug VARCHAR(100) NOT NULL UNIQUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured);`,
		},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("creating table %s: %w", table.name, err)
		}
	}

	return nil
}
