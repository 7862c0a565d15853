package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

// GetAdminByEmail retrieves an admin account by its normalized email
func (r *AuthRepo) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`

	var admin models.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

// CreateAdmin inserts a new admin account
func (r *AuthRepo) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES (:id, :name, :email, :password_hash, :role, :is_active, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("an admin with this email already exists")
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}
