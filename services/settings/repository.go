package settings

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/evoting/services/settings SettingsRepo

// SettingsRepo defines the persistence of key/value settings
type SettingsRepo interface {
	// GetSetting returns an apperror NotFound when the key is absent
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, setting *models.Setting) error
	// ModifySetting reads the current value under a row lock and stores the value fn returns
	ModifySetting(ctx context.Context, key, description string, fn func(current string, found bool) (string, error)) error
}
