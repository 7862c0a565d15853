package usecase

import (
	"github.com/piresc/evoting/internal/pkg/cache"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/results"
	"github.com/piresc/evoting/services/settings"
)

// ResultsUC implements results.ResultsUC
type ResultsUC struct {
	cfg         *models.Config
	resultsRepo results.ResultsRepo
	settingsUC  settings.SettingsUC
	cache       cache.Cache
}

// NewResultsUC creates a new results usecase instance
func NewResultsUC(cfg *models.Config, resultsRepo results.ResultsRepo, settingsUC settings.SettingsUC, c cache.Cache) *ResultsUC {
	return &ResultsUC{
		cfg:         cfg,
		resultsRepo: resultsRepo,
		settingsUC:  settingsUC,
		cache:       c,
	}
}
