// Package migrations holds the SQL schema and applies it in file name order.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/evoting/internal/pkg/logger"
)

//go:embed *.sql
var files embed.FS

const versionTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)
`

// Names returns the embedded migration files in apply order
func Names() ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Apply runs every migration not yet recorded in schema_migrations and
// returns the names it applied. Each file runs in its own transaction.
func Apply(ctx context.Context, db *sqlx.DB) ([]string, error) {
	if _, err := db.ExecContext(ctx, versionTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	names, err := Names()
	if err != nil {
		return nil, err
	}

	applied := []string{}
	for _, name := range names {
		var count int
		if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM schema_migrations WHERE version = $1`, name); err != nil {
			return applied, fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if err := applyOne(ctx, db, name, string(body)); err != nil {
			return applied, err
		}
		logger.Info("Migration applied", logger.String("version", name))
		applied = append(applied, name)
	}

	return applied, nil
}

func applyOne(ctx context.Context, db *sqlx.DB, name, body string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", name, err)
	}
	return nil
}
