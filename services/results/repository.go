package results

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/evoting/services/results ResultsRepo

// ResultsRepo defines the aggregate queries over settled votes
type ResultsRepo interface {
	Results(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error)
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}
