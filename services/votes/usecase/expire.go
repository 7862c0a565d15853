package usecase

import (
	"context"
	"time"

	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

const expireBatchSize = 200

var expiredProviderResponse = []byte(`{"status":false,"message":"expired without settlement"}`)

// ExpirePending fails pairs left pending for longer than olderThan
func (uc *VotesUC) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		hours := uc.cfg.Voting.PendingExpiryHours
		if hours <= 0 {
			hours = 24
		}
		olderThan = time.Duration(hours) * time.Hour
	}
	cutoff := uc.now().Add(-olderThan)

	expired := 0
	for {
		refs, err := uc.votesRepo.ListStalePending(ctx, cutoff, expireBatchSize)
		if err != nil {
			return expired, err
		}

		progressed := false
		for _, ref := range refs {
			row, err := uc.votesRepo.GetReceipt(ctx, ref)
			if err != nil {
				logger.Warn("Skipping stale payment", logger.String("reference", ref), logger.Err(err))
				continue
			}

			ok, err := uc.settle(ctx, row, models.PaymentStatusFailed, expiredProviderResponse)
			if err != nil {
				logger.Warn("Failed to expire payment", logger.String("reference", ref), logger.Err(err))
				continue
			}
			if ok {
				expired++
				progressed = true
			}
		}

		if len(refs) < expireBatchSize || !progressed {
			break
		}
	}

	logger.Info("Stale payments expired", logger.Int("count", expired), logger.Duration("older_than", olderThan))
	return expired, nil
}
