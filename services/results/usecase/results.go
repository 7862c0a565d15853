package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

// PublicResults returns the tallies when publishing is switched on
func (uc *ResultsUC) PublicResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error) {
	enabled, err := uc.settingsUC.GetBool(ctx, models.SettingPublicResultsEnabled, uc.cfg.Voting.PublicResultsEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to read publishing flag: %w", err)
	}
	if !enabled {
		return nil, apperror.New(apperror.KindForbidden, "Results are not available to the public yet")
	}

	filter.ActiveOnly = true
	key := resultsKey(filter, constants.KeyPublicResultsAll, constants.KeyPublicResultsPosition, constants.KeyPublicResultsCategory)
	return uc.cachedResults(ctx, key, filter)
}

// AdminResults returns the tallies regardless of the publishing flag
func (uc *ResultsUC) AdminResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error) {
	key := resultsKey(filter, constants.KeyAdminResultsAll, constants.KeyAdminResultsPosition, constants.KeyAdminResultsCategory)
	return uc.cachedResults(ctx, key, filter)
}

// Dashboard returns the payment summary for admins
func (uc *ResultsUC) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	var cached models.DashboardSummary
	if found, err := uc.cache.Get(ctx, constants.KeyDashboardSummary, &cached); err != nil {
		logger.Warn("Failed to read dashboard cache", logger.Err(err))
	} else if found {
		return &cached, nil
	}

	summary, err := uc.resultsRepo.DashboardSummary(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, constants.KeyDashboardSummary, summary, constants.TTLDashboard); err != nil {
		logger.Warn("Failed to cache dashboard summary", logger.Err(err))
	}
	return summary, nil
}

func (uc *ResultsUC) cachedResults(ctx context.Context, key string, filter models.ResultFilter) ([]models.ResultRow, error) {
	var cached []models.ResultRow
	if found, err := uc.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn("Failed to read results cache", logger.String("key", key), logger.Err(err))
	} else if found {
		return cached, nil
	}

	rows, err := uc.resultsRepo.Results(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, rows, constants.TTLResults); err != nil {
		logger.Warn("Failed to cache results", logger.String("key", key), logger.Err(err))
	}
	return rows, nil
}

// resultsKey picks the cache key for a filter. Position wins over category.
func resultsKey(filter models.ResultFilter, all, byPosition, byCategory string) string {
	switch {
	case filter.PositionID > 0:
		return fmt.Sprintf(byPosition, filter.PositionID)
	case filter.CategoryID > 0:
		return fmt.Sprintf(byCategory, filter.CategoryID)
	default:
		return all
	}
}
