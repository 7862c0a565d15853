package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

// ListActiveCategories returns active categories ordered by id
func (r *VotesRepo) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, status, created_at
		FROM categories
		WHERE status = $1
		ORDER BY id
	`

	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, statusActive); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListActivePositions returns active positions of active categories in display order
func (r *VotesRepo) ListActivePositions(ctx context.Context) ([]models.Position, error) {
	query := `
		SELECT p.id, p.category_id, c.name AS category_name, p.name, p.display_order, p.status, p.created_at
		FROM positions p
		JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1 AND c.status = $1
		ORDER BY p.category_id, p.display_order, p.id
	`

	positions := []models.Position{}
	if err := r.db.SelectContext(ctx, &positions, query, statusActive); err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

// GetPosition retrieves a position with its category name
func (r *VotesRepo) GetPosition(ctx context.Context, id int64) (*models.Position, error) {
	query := `
		SELECT p.id, p.category_id, c.name AS category_name, p.name, p.display_order, p.status, p.created_at
		FROM positions p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var position models.Position
	if err := r.db.GetContext(ctx, &position, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Position not found")
		}
		return nil, fmt.Errorf("failed to get position %d: %w", id, err)
	}
	return &position, nil
}

// GetCandidate retrieves a candidate by id
func (r *VotesRepo) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	query := `
		SELECT id, position_id, name, bio, photo_url, status, created_at
		FROM candidates
		WHERE id = $1
	`

	var candidate models.Candidate
	if err := r.db.GetContext(ctx, &candidate, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, fmt.Errorf("failed to get candidate %d: %w", id, err)
	}
	return &candidate, nil
}

// ListCandidatesByPosition returns the active candidates of a position
func (r *VotesRepo) ListCandidatesByPosition(ctx context.Context, positionID int64) ([]models.Candidate, error) {
	query := `
		SELECT id, position_id, name, bio, photo_url, status, created_at
		FROM candidates
		WHERE position_id = $1 AND status = $2
		ORDER BY name
	`

	candidates := []models.Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, positionID, statusActive); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}
