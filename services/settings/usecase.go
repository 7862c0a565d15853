package settings

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/evoting/services/settings SettingsUC

// SettingsUC is the settings store with its read cache
type SettingsUC interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
	GetBool(ctx context.Context, key string, defaultValue bool) (bool, error)
	Set(ctx context.Context, key, value, description string) error
	SetBool(ctx context.Context, key string, value bool, description string) error

	// schedule audit log
	AppendScheduleLog(ctx context.Context, entry models.ScheduleLogEntry) error
	ScheduleLogs(ctx context.Context) ([]models.ScheduleLogEntry, error)
	PruneScheduleLogs(ctx context.Context, keep int) (int, error)
}
