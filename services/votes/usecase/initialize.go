package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
)

const (
	statusActive          = "active"
	callbackPath          = "/api/payment/success"
	defaultUnitPriceMinor = 100
)

// Initialize validates a vote purchase, stores the pending pair and opens a checkout
func (uc *VotesUC) Initialize(ctx context.Context, req models.InitializeVoteRequest, sessionID string) (*models.InitializeVoteResponse, error) {
	if limit := uc.cfg.Voting.MaxVotesPerTxn; limit > 0 && req.VoteCount > limit {
		return nil, apperror.Validation("The given data was invalid.", map[string]string{
			"vote_count": fmt.Sprintf("vote_count may not be greater than %d", limit),
		})
	}

	candidate, err := uc.votesRepo.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Status != statusActive {
		return nil, apperror.NotFound("Candidate not found")
	}

	position, err := uc.votesRepo.GetPosition(ctx, req.PositionID)
	if err != nil {
		return nil, err
	}
	if position.Status != statusActive {
		return nil, apperror.NotFound("Position not found")
	}
	if candidate.PositionID != position.ID {
		return nil, apperror.Conflict("Candidate does not belong to the selected position")
	}

	if err := uc.ensureVotingOpen(ctx, position.CategoryName); err != nil {
		return nil, err
	}

	amountMinor := int64(math.Round(req.Amount * 100))
	expectedMinor := int64(req.VoteCount) * uc.unitPriceMinor()
	if amountMinor != expectedMinor {
		return nil, apperror.Validation("Amount does not match the number of votes", map[string]string{
			"amount": fmt.Sprintf("amount must be %.2f for %d votes", models.MinorToMajor(expectedMinor), req.VoteCount),
		})
	}

	email := utils.NormalizeEmail(req.Email)
	reference := newReference()
	metadata := models.PaymentMetadata{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		PositionID:    position.ID,
		PositionName:  position.Name,
		VoteCount:     req.VoteCount,
	}
	rawMetadata, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment metadata: %w", err)
	}

	now := uc.now()
	payment := &models.Payment{
		ID:        uuid.New().String(),
		Reference: reference,
		Amount:    amountMinor,
		Status:    models.PaymentStatusPending,
		Email:     email,
		Phone:     req.Phone,
		Metadata:  rawMetadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	vote := &models.Vote{
		ID:               uuid.New().String(),
		CandidateID:      candidate.ID,
		PositionID:       position.ID,
		PaymentReference: reference,
		VoteCount:        req.VoteCount,
		Amount:           amountMinor,
		VoterEmail:       email,
		VoterPhone:       req.Phone,
		PaymentStatus:    models.PaymentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.votesRepo.CreatePendingVote(ctx, payment, vote); err != nil {
		return nil, err
	}

	result := uc.paymentGW.InitializeTransaction(ctx, models.InitializeTransactionPayload{
		Email:       email,
		Amount:      amountMinor,
		Reference:   reference,
		CallbackURL: uc.callbackURL(reference),
		Metadata:    metadata,
	})
	if !result.Status {
		// no checkout exists to pay into; fail the pair now instead of leaving it to expire-pending
		row := &models.ReceiptRow{
			Reference:     reference,
			Amount:        amountMinor,
			VoteCount:     req.VoteCount,
			CandidateID:   candidate.ID,
			CandidateName: candidate.Name,
			PositionID:    position.ID,
			PositionName:  position.Name,
			CategoryID:    position.CategoryID,
			VoterEmail:    email,
			Status:        models.PaymentStatusPending,
		}
		raw := result.Raw
		if len(raw) == 0 {
			raw, _ = json.Marshal(result)
		}
		if _, err := uc.settle(ctx, row, models.PaymentStatusFailed, raw); err != nil {
			logger.Error("Failed to close rejected payment", logger.String("reference", reference), logger.Err(err))
		}
		return nil, apperror.Upstream(result.Message, nil)
	}

	if err := uc.votesRepo.SaveProviderResponse(ctx, reference, result.Raw); err != nil {
		logger.Warn("Failed to store checkout response", logger.String("reference", reference), logger.Err(err))
	}

	if sessionID != "" {
		if err := uc.sessionRepo.PutPaymentRef(ctx, sessionID, reference); err != nil {
			logger.Warn("Failed to remember payment reference", logger.String("reference", reference), logger.Err(err))
		}
	}

	logger.Info("Vote initialized",
		logger.String("reference", reference),
		logger.Int64("candidate_id", candidate.ID),
		logger.Int("vote_count", req.VoteCount),
		logger.Int64("amount", amountMinor))

	return &models.InitializeVoteResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        reference,
	}, nil
}

func (uc *VotesUC) unitPriceMinor() int64 {
	if uc.cfg.Voting.UnitPriceMinor > 0 {
		return uc.cfg.Voting.UnitPriceMinor
	}
	return defaultUnitPriceMinor
}

func (uc *VotesUC) callbackURL(reference string) string {
	return strings.TrimRight(uc.cfg.App.URL, "/") + callbackPath + "?reference=" + url.QueryEscape(reference)
}

func newReference() string {
	return "VOTE_" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}
