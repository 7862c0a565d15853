package usecase

import (
	"time"

	"github.com/piresc/evoting/services/settings"
)

// statusLogLimit is how many audit entries a status report carries
const statusLogLimit = 10

// ScheduleUC implements schedule.ScheduleUC on top of the settings store
type ScheduleUC struct {
	settingsUC settings.SettingsUC
	now        func() time.Time
}

// NewScheduleUC creates a new schedule usecase instance
func NewScheduleUC(settingsUC settings.SettingsUC) *ScheduleUC {
	return &ScheduleUC{
		settingsUC: settingsUC,
		now:        time.Now,
	}
}
