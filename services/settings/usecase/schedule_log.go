package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

const scheduleLogDescription = "Voting schedule audit log"

// AppendScheduleLog adds an entry and evicts the oldest beyond MaxScheduleLogs
func (u *SettingsUC) AppendScheduleLog(ctx context.Context, entry models.ScheduleLogEntry) error {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}

	err := u.settingsRepo.ModifySetting(ctx, models.SettingScheduleLogs, scheduleLogDescription,
		func(current string, found bool) (string, error) {
			entries := decodeScheduleLogs(current, found)
			entries = appendBounded(entries, entry, models.MaxScheduleLogs)
			return encodeScheduleLogs(entries)
		})
	if err != nil {
		return fmt.Errorf("failed to append schedule log: %w", err)
	}

	return u.invalidate(ctx, models.SettingScheduleLogs)
}

// ScheduleLogs returns the audit log, oldest first
func (u *SettingsUC) ScheduleLogs(ctx context.Context) ([]models.ScheduleLogEntry, error) {
	raw, err := u.Get(ctx, models.SettingScheduleLogs, "")
	if err != nil {
		return nil, err
	}
	return decodeScheduleLogs(raw, raw != ""), nil
}

// PruneScheduleLogs keeps only the newest keep entries and returns how many were removed
func (u *SettingsUC) PruneScheduleLogs(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	if keep > models.MaxScheduleLogs {
		keep = models.MaxScheduleLogs
	}

	removed := 0
	err := u.settingsRepo.ModifySetting(ctx, models.SettingScheduleLogs, scheduleLogDescription,
		func(current string, found bool) (string, error) {
			entries := decodeScheduleLogs(current, found)
			if len(entries) > keep {
				removed = len(entries) - keep
				entries = entries[removed:]
			}
			return encodeScheduleLogs(entries)
		})
	if err != nil {
		return 0, fmt.Errorf("failed to prune schedule logs: %w", err)
	}

	if err := u.invalidate(ctx, models.SettingScheduleLogs); err != nil {
		return removed, err
	}
	return removed, nil
}

func appendBounded(entries []models.ScheduleLogEntry, entry models.ScheduleLogEntry, max int) []models.ScheduleLogEntry {
	entries = append(entries, entry)
	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	return entries
}

func decodeScheduleLogs(raw string, found bool) []models.ScheduleLogEntry {
	if !found || raw == "" {
		return []models.ScheduleLogEntry{}
	}

	var entries []models.ScheduleLogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// a corrupt blob is replaced rather than blocking schedule changes
		logger.Warn("Discarding unreadable schedule log", logger.Err(err))
		return []models.ScheduleLogEntry{}
	}
	return entries
}

func encodeScheduleLogs(entries []models.ScheduleLogEntry) (string, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule logs: %w", err)
	}
	return string(raw), nil
}
