package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

// DefaultLockMessage is shown when no lock message is configured for a category
func DefaultLockMessage(category string) string {
	return fmt.Sprintf("Voting for the %s category is currently closed. Please check back later.", category)
}

// ListCategories returns active categories with their positions and voting state
func (uc *VotesUC) ListCategories(ctx context.Context) ([]models.CategoryListing, error) {
	categories, err := uc.votesRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := uc.votesRepo.ListActivePositions(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]models.Position, len(categories))
	for _, p := range positions {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	listings := make([]models.CategoryListing, 0, len(categories))
	for _, c := range categories {
		active, message, err := uc.votingState(ctx, c.Name)
		if err != nil {
			return nil, err
		}

		listing := models.CategoryListing{
			Category:     c,
			VotingActive: active,
			Positions:    byCategory[c.ID],
		}
		if !active {
			listing.LockMessage = message
		}
		if listing.Positions == nil {
			listing.Positions = []models.Position{}
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

// ListCandidates returns the active candidates of a position through the cache
func (uc *VotesUC) ListCandidates(ctx context.Context, positionID int64) ([]models.Candidate, error) {
	key := fmt.Sprintf(constants.KeyCandidatesByPosition, positionID)

	var cached []models.Candidate
	found, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Candidate cache read failed", logger.String("key", key), logger.Err(err))
	} else if found {
		return cached, nil
	}

	if _, err := uc.votesRepo.GetPosition(ctx, positionID); err != nil {
		return nil, err
	}

	candidates, err := uc.votesRepo.ListCandidatesByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, candidates, constants.TTLCandidates); err != nil {
		logger.Warn("Candidate cache write failed", logger.String("key", key), logger.Err(err))
	}

	return candidates, nil
}

// votingState reads the active flag and lock message of a category
func (uc *VotesUC) votingState(ctx context.Context, categoryName string) (bool, string, error) {
	category := strings.ToLower(categoryName)

	active, err := uc.settingsUC.GetBool(ctx, models.VotingActiveKey(category), false)
	if err != nil {
		return false, "", fmt.Errorf("failed to read voting state: %w", err)
	}
	if active {
		return true, "", nil
	}

	message, err := uc.settingsUC.Get(ctx, models.LockMessageKey(category), "")
	if err != nil {
		logger.Warn("Lock message unavailable", logger.String("category", category), logger.Err(err))
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultLockMessage(categoryName)
	}

	return false, message, nil
}

func (uc *VotesUC) ensureVotingOpen(ctx context.Context, categoryName string) error {
	active, message, err := uc.votingState(ctx, categoryName)
	if err != nil {
		return err
	}
	if !active {
		return apperror.Locked(message)
	}
	return nil
}
