package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// ParseAction splits an action such as "start-church" into its verb and category
func ParseAction(action string) (verb, category string, err error) {
	verb, category, found := strings.Cut(strings.ToLower(strings.TrimSpace(action)), "-")
	if !found || (verb != models.ScheduleActionStart && verb != models.ScheduleActionEnd) || !models.IsScheduleCategory(category) {
		return "", "", apperror.Validation("Invalid schedule action", map[string]string{
			"action": "must be one of start-church, end-church, start-national, end-national",
		})
	}
	return verb, category, nil
}

// ParseDate reads an optional effective date; an empty string yields the zero time
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validation("Invalid date", map[string]string{
		"date": "use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339",
	})
}

// Apply implements schedule.ScheduleUC
func (uc *ScheduleUC) Apply(ctx context.Context, action string, effectiveAt time.Time, actor string) (*models.CategorySchedule, error) {
	verb, category, err := ParseAction(action)
	if err != nil {
		return nil, err
	}
	if effectiveAt.IsZero() {
		effectiveAt = uc.now()
	}
	effectiveAt = effectiveAt.UTC()
	if actor == "" {
		actor = "system"
	}

	active := verb == models.ScheduleActionStart
	stampKey := models.VotingEndKey(category)
	if active {
		stampKey = models.VotingStartKey(category)
	}

	if err := uc.settingsUC.SetBool(ctx, models.VotingActiveKey(category), active,
		fmt.Sprintf("Whether %s voting is open", category)); err != nil {
		return nil, fmt.Errorf("failed to %s %s voting: %w", verb, category, err)
	}
	if err := uc.settingsUC.Set(ctx, stampKey, effectiveAt.Format(time.RFC3339),
		fmt.Sprintf("Last %s time of %s voting", verb, category)); err != nil {
		return nil, fmt.Errorf("failed to record %s %s time: %w", category, verb, err)
	}

	entry := models.ScheduleLogEntry{
		Action:      action,
		Category:    category,
		Actor:       actor,
		EffectiveAt: effectiveAt,
		LoggedAt:    uc.now().UTC(),
	}
	if err := uc.settingsUC.AppendScheduleLog(ctx, entry); err != nil {
		// the flag change stands even when the audit write fails
		logger.Error("Failed to append schedule log",
			logger.String("action", action),
			logger.String("actor", actor),
			logger.Err(err))
	}

	logger.Info("Voting schedule changed",
		logger.String("action", action),
		logger.String("category", category),
		logger.String("actor", actor),
		logger.Bool("active", active))

	return uc.categorySchedule(ctx, category)
}

// Status implements schedule.ScheduleUC
func (uc *ScheduleUC) Status(ctx context.Context) (*models.ScheduleStatus, error) {
	status := &models.ScheduleStatus{Categories: make([]models.CategorySchedule, 0, len(models.ScheduleCategories))}
	for _, category := range models.ScheduleCategories {
		cs, err := uc.categorySchedule(ctx, category)
		if err != nil {
			return nil, err
		}
		status.Categories = append(status.Categories, *cs)
		status.AnyActive = status.AnyActive || cs.Active
	}

	logs, err := uc.settingsUC.ScheduleLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule logs: %w", err)
	}
	if len(logs) > statusLogLimit {
		logs = logs[len(logs)-statusLogLimit:]
	}
	status.Logs = logs

	return status, nil
}

func (uc *ScheduleUC) categorySchedule(ctx context.Context, category string) (*models.CategorySchedule, error) {
	active, err := uc.settingsUC.GetBool(ctx, models.VotingActiveKey(category), false)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s voting flag: %w", category, err)
	}
	start, err := uc.settingsUC.Get(ctx, models.VotingStartKey(category), "")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s start time: %w", category, err)
	}
	end, err := uc.settingsUC.Get(ctx, models.VotingEndKey(category), "")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s end time: %w", category, err)
	}

	return &models.CategorySchedule{Category: category, Active: active, Start: start, End: end}, nil
}
