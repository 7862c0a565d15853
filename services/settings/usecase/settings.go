package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

// cachedSetting also records absence so unknown keys do not hit the database
type cachedSetting struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

func settingCacheKey(key string) string {
	return fmt.Sprintf(constants.KeySetting, key)
}

// Get returns the stored value of key, or defaultValue when it is not set
func (u *SettingsUC) Get(ctx context.Context, key, defaultValue string) (string, error) {
	cacheKey := settingCacheKey(key)

	var cached cachedSetting
	hit, err := u.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("Settings cache read failed", logger.String("key", key), logger.Err(err))
	}
	if hit {
		if !cached.Found {
			return defaultValue, nil
		}
		return cached.Value, nil
	}

	setting, err := u.settingsRepo.GetSetting(ctx, key)
	switch {
	case apperror.Is(err, apperror.KindNotFound):
		cached = cachedSetting{Found: false}
	case err != nil:
		return "", fmt.Errorf("failed to get setting: %w", err)
	default:
		cached = cachedSetting{Value: setting.Value, Found: true}
	}

	if err := u.cache.Set(ctx, cacheKey, cached, constants.TTLSetting); err != nil {
		logger.Warn("Settings cache write failed", logger.String("key", key), logger.Err(err))
	}

	if !cached.Found {
		return defaultValue, nil
	}
	return cached.Value, nil
}

// GetBool decodes a "true"/"false" setting
func (u *SettingsUC) GetBool(ctx context.Context, key string, defaultValue bool) (bool, error) {
	raw, err := u.Get(ctx, key, strconv.FormatBool(defaultValue))
	if err != nil {
		return false, err
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Setting is not a boolean, using default",
			logger.String("key", key),
			logger.String("value", raw))
		return defaultValue, nil
	}
	return value, nil
}

// Set stores the value and drops the cached entry before returning
func (u *SettingsUC) Set(ctx context.Context, key, value, description string) error {
	if err := u.settingsRepo.UpsertSetting(ctx, &models.Setting{Key: key, Value: value, Description: description}); err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return u.invalidate(ctx, key)
}

// SetBool stores a canonical "true"/"false" value
func (u *SettingsUC) SetBool(ctx context.Context, key string, value bool, description string) error {
	return u.Set(ctx, key, strconv.FormatBool(value), description)
}

func (u *SettingsUC) invalidate(ctx context.Context, key string) error {
	if err := u.cache.Delete(ctx, settingCacheKey(key)); err != nil {
		return fmt.Errorf("failed to invalidate setting cache: %w", err)
	}
	return nil
}
