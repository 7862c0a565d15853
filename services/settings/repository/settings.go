package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

// SettingsRepo implements settings persistence on Postgres
type SettingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

const upsertSettingQuery = `
	INSERT INTO settings (key, value, description, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		description = COALESCE(NULLIF(EXCLUDED.description, ''), settings.description),
		updated_at = NOW()
`

// GetSetting retrieves a setting by key
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	query := `
		SELECT key, value, description, updated_at
		FROM settings
		WHERE key = $1
	`

	var setting models.Setting
	if err := r.db.GetContext(ctx, &setting, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("setting not found")
		}
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return &setting, nil
}

// UpsertSetting inserts or replaces a setting. An empty description keeps the stored one.
func (r *SettingsRepo) UpsertSetting(ctx context.Context, setting *models.Setting) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingQuery, setting.Key, setting.Value, setting.Description); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", setting.Key, err)
	}
	return nil
}

// ModifySetting runs a read-modify-write of one key in a transaction
func (r *SettingsRepo) ModifySetting(ctx context.Context, key, description string, fn func(current string, found bool) (string, error)) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	found := true
	err = tx.GetContext(ctx, &current, `SELECT value FROM settings WHERE key = $1 FOR UPDATE`, key)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return fmt.Errorf("failed to lock setting %s: %w", key, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, upsertSettingQuery, key, next, description); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
