package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/evoting/internal/pkg/models"
)

// ResultsRepo implements the results queries on Postgres
type ResultsRepo struct {
	db *sqlx.DB
}

// NewResultsRepo creates a new results repository
func NewResultsRepo(db *sqlx.DB) *ResultsRepo {
	return &ResultsRepo{db: db}
}

// Results sums the success votes of every candidate matching the filter.
// A position filter takes precedence over a category filter.
func (r *ResultsRepo) Results(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error) {
	var (
		conditions []string
		args       []interface{}
	)
	switch {
	case filter.PositionID > 0:
		args = append(args, filter.PositionID)
		conditions = append(conditions, fmt.Sprintf("p.id = $%d", len(args)))
	case filter.CategoryID > 0:
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("cat.id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "c.status = 'active'", "p.status = 'active'")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
		SELECT cat.id AS category_id, cat.name AS category,
			p.id AS position_id, p.name AS position,
			c.id AS candidate_id, c.name AS candidate,
			COALESCE(SUM(v.vote_count), 0) AS total_votes
		FROM candidates c
		JOIN positions p ON p.id = c.position_id
		JOIN categories cat ON cat.id = p.category_id
		LEFT JOIN votes v ON v.candidate_id = c.id AND v.payment_status = 'success'
		` + where + `
		GROUP BY cat.id, cat.name, p.id, p.name, p.display_order, c.id, c.name
		ORDER BY cat.id, p.display_order, p.id, total_votes DESC, c.name
	`

	rows := []models.ResultRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate results: %w", err)
	}
	return rows, nil
}

// DashboardSummary counts payments by status and totals the settled revenue
func (r *ResultsRepo) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(vote_count) FROM votes WHERE payment_status = 'success'), 0) AS total_votes,
			COALESCE(SUM(amount) FILTER (WHERE status = 'success'), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE status = 'success') AS successful_payments,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_payments,
			COUNT(*) FILTER (WHERE status = 'failed') AS failed_payments
		FROM payments
	`

	var summary models.DashboardSummary
	if err := r.db.GetContext(ctx, &summary, query); err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	summary.TotalRevenue = models.MinorToMajor(summary.TotalRevenueMinor)

	return &summary, nil
}
