package results

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/evoting/services/results ResultsUC

// ResultsUC defines the cached results views
type ResultsUC interface {
	PublicResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error)
	AdminResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error)
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
}
