package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/cache"
	cachemocks "github.com/piresc/evoting/internal/pkg/cache/mocks"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/settings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsUC(t *testing.T) (*SettingsUC, *mocks.MockSettingsRepo, *miniredis.Miniredis) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	uc := NewSettingsUC(mockRepo, cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
	return uc, mockRepo, mr
}

func TestGet_CachesValue(t *testing.T) {
	// Arrange
	uc, mockRepo, mr := setupSettingsUC(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetSetting(gomock.Any(), "church_voting_lock_message").
		Return(&models.Setting{Key: "church_voting_lock_message", Value: "Opens Sunday"}, nil).
		Times(1)

	// Act
	first, err1 := uc.Get(ctx, "church_voting_lock_message", "default")
	second, err2 := uc.Get(ctx, "church_voting_lock_message", "default")

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, "Opens Sunday", first)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("settings:church_voting_lock_message"))
	assert.InDelta(t, (5 * time.Minute).Seconds(), mr.TTL("settings:church_voting_lock_message").Seconds(), 1)
}

func TestGet_MissingUsesDefaultAndCachesAbsence(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	mockRepo.EXPECT().
		GetSetting(gomock.Any(), "national_voting_active").
		Return(nil, apperror.NotFound("setting not found")).
		Times(1)

	for i := 0; i < 2; i++ {
		value, err := uc.Get(context.Background(), "national_voting_active", "false")
		require.NoError(t, err)
		assert.Equal(t, "false", value)
	}
}

func TestGet_RepositoryError(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	mockRepo.EXPECT().
		GetSetting(gomock.Any(), "k").
		Return(nil, errors.New("connection reset"))

	_, err := uc.Get(context.Background(), "k", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get setting")
}

func TestGet_CacheDownFallsBackToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)
	uc := NewSettingsUC(mockRepo, mockCache)

	mockCache.EXPECT().Get(gomock.Any(), "settings:k", gomock.Any()).Return(false, errors.New("redis down"))
	mockRepo.EXPECT().GetSetting(gomock.Any(), "k").Return(&models.Setting{Key: "k", Value: "v"}, nil)
	mockCache.EXPECT().Set(gomock.Any(), "settings:k", gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	value, err := uc.Get(context.Background(), "k", "")

	assert.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestSet_InvalidatesBeforeNextRead(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)
	ctx := context.Background()
	key := models.VotingActiveKey("Church")

	gomock.InOrder(
		mockRepo.EXPECT().GetSetting(gomock.Any(), key).Return(&models.Setting{Key: key, Value: "false"}, nil),
		mockRepo.EXPECT().UpsertSetting(gomock.Any(), &models.Setting{Key: key, Value: "true", Description: "opened"}).Return(nil),
		mockRepo.EXPECT().GetSetting(gomock.Any(), key).Return(&models.Setting{Key: key, Value: "true"}, nil),
	)

	before, err := uc.GetBool(ctx, key, false)
	require.NoError(t, err)
	require.NoError(t, uc.SetBool(ctx, key, true, "opened"))
	after, err := uc.GetBool(ctx, key, false)
	require.NoError(t, err)

	assert.False(t, before)
	assert.True(t, after)
}

func TestSet_RepositoryError(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	mockRepo.EXPECT().UpsertSetting(gomock.Any(), gomock.Any()).Return(errors.New("read only"))

	err := uc.Set(context.Background(), "k", "v", "")

	assert.Error(t, err)
}

func TestGetBool_InvalidValueUsesDefault(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	mockRepo.EXPECT().
		GetSetting(gomock.Any(), models.SettingPublicResultsEnabled).
		Return(&models.Setting{Value: "yes please"}, nil)

	value, err := uc.GetBool(context.Background(), models.SettingPublicResultsEnabled, true)

	assert.NoError(t, err)
	assert.True(t, value)
}

func logsOf(n int) string {
	entries := make([]models.ScheduleLogEntry, n)
	for i := range entries {
		entries[i] = models.ScheduleLogEntry{Action: fmt.Sprintf("a%d", i), Category: models.CategoryChurch}
	}
	raw, _ := json.Marshal(entries)
	return string(raw)
}

func TestAppendScheduleLog_EvictsOldest(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	var stored string
	mockRepo.EXPECT().
		ModifySetting(gomock.Any(), models.SettingScheduleLogs, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, fn func(string, bool) (string, error)) error {
			var err error
			stored, err = fn(logsOf(models.MaxScheduleLogs), true)
			return err
		})

	err := uc.AppendScheduleLog(context.Background(), models.ScheduleLogEntry{Action: "start-church", Category: models.CategoryChurch, Actor: "cli"})
	require.NoError(t, err)

	var entries []models.ScheduleLogEntry
	require.NoError(t, json.Unmarshal([]byte(stored), &entries))
	assert.Len(t, entries, models.MaxScheduleLogs)
	assert.Equal(t, "a1", entries[0].Action)
	assert.Equal(t, "start-church", entries[len(entries)-1].Action)
	assert.False(t, entries[len(entries)-1].LoggedAt.IsZero())
}

func TestAppendScheduleLog_FirstEntryAndCorruptBlob(t *testing.T) {
	tests := []struct {
		name    string
		current string
		found   bool
	}{
		{name: "no row yet", found: false},
		{name: "corrupt blob", current: "{not json", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _ := setupSettingsUC(t)

			var stored string
			mockRepo.EXPECT().
				ModifySetting(gomock.Any(), models.SettingScheduleLogs, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, fn func(string, bool) (string, error)) error {
					var err error
					stored, err = fn(tt.current, tt.found)
					return err
				})

			require.NoError(t, uc.AppendScheduleLog(context.Background(), models.ScheduleLogEntry{Action: "end-national"}))

			var entries []models.ScheduleLogEntry
			require.NoError(t, json.Unmarshal([]byte(stored), &entries))
			assert.Len(t, entries, 1)
		})
	}
}

func TestPruneScheduleLogs(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	var stored string
	mockRepo.EXPECT().
		ModifySetting(gomock.Any(), models.SettingScheduleLogs, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, fn func(string, bool) (string, error)) error {
			var err error
			stored, err = fn(logsOf(30), true)
			return err
		})

	removed, err := uc.PruneScheduleLogs(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 20, removed)
	var entries []models.ScheduleLogEntry
	require.NoError(t, json.Unmarshal([]byte(stored), &entries))
	assert.Len(t, entries, 10)
	assert.Equal(t, "a20", entries[0].Action)
}

func TestScheduleLogs_ReadsThroughCache(t *testing.T) {
	uc, mockRepo, _ := setupSettingsUC(t)

	mockRepo.EXPECT().
		GetSetting(gomock.Any(), models.SettingScheduleLogs).
		Return(&models.Setting{Value: logsOf(3)}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		entries, err := uc.ScheduleLogs(context.Background())
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	}
}
