package usecase

import (
	"github.com/piresc/evoting/internal/pkg/cache"
	"github.com/piresc/evoting/services/settings"
)

// SettingsUC implements settings.SettingsUC
type SettingsUC struct {
	settingsRepo settings.SettingsRepo
	cache        cache.Cache
}

// NewSettingsUC creates a new settings usecase instance
func NewSettingsUC(settingsRepo settings.SettingsRepo, c cache.Cache) *SettingsUC {
	return &SettingsUC{
		settingsRepo: settingsRepo,
		cache:        c,
	}
}
