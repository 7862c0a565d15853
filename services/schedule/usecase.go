package schedule

import (
	"context"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/evoting/services/schedule ScheduleUC

// ScheduleUC opens and closes voting per category
type ScheduleUC interface {
	// Apply runs a start-<category> or end-<category> action and records it in the audit log
	Apply(ctx context.Context, action string, effectiveAt time.Time, actor string) (*models.CategorySchedule, error)
	Status(ctx context.Context) (*models.ScheduleStatus, error)
}
