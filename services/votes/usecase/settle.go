package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

// settle is the one state update shared by every settlement trigger. The
// side effects run only for the caller whose guarded update won.
func (uc *VotesUC) settle(ctx context.Context, row *models.ReceiptRow, status models.PaymentStatus, providerResponse json.RawMessage) (bool, error) {
	settledAt := uc.now()

	transitioned, err := uc.votesRepo.SettlePayment(ctx, row.Reference, status, providerResponse, settledAt)
	if err != nil {
		return false, err
	}
	if !transitioned {
		logger.Debug("Payment already settled", logger.String("reference", row.Reference))
		return false, nil
	}

	row.Status = status
	logger.Info("Payment settled",
		logger.String("reference", row.Reference),
		logger.String("status", string(status)))

	if status == models.PaymentStatusSuccess {
		uc.invalidateAfterSuccess(ctx, row)

		memoKey := fmt.Sprintf(constants.KeyPaymentVerified, row.Reference)
		if err := uc.cache.Set(ctx, memoKey, receiptFor(row), constants.TTLPaymentVerified); err != nil {
			logger.Warn("Failed to memo verified payment", logger.String("reference", row.Reference), logger.Err(err))
		}
	}

	event := models.VoteSettledEvent{
		Reference:   row.Reference,
		Status:      status,
		CandidateID: row.CandidateID,
		PositionID:  row.PositionID,
		VoteCount:   row.VoteCount,
		Amount:      row.Amount,
		Email:       row.VoterEmail,
		SettledAt:   settledAt,
	}
	if err := uc.eventsGW.PublishVoteSettled(ctx, event); err != nil {
		logger.Error("Failed to publish settlement", logger.String("reference", row.Reference), logger.Err(err))
	}

	return true, nil
}

// invalidateAfterSuccess drops every cached view a new successful vote changes
func (uc *VotesUC) invalidateAfterSuccess(ctx context.Context, row *models.ReceiptRow) {
	keys := []string{
		constants.KeyDashboardSummary,
		constants.KeyPublicResultsAll,
		fmt.Sprintf(constants.KeyPublicResultsPosition, row.PositionID),
		fmt.Sprintf(constants.KeyPublicResultsCategory, row.CategoryID),
		constants.KeyAdminResultsAll,
		fmt.Sprintf(constants.KeyAdminResultsPosition, row.PositionID),
		fmt.Sprintf(constants.KeyAdminResultsCategory, row.CategoryID),
		fmt.Sprintf(constants.KeyCandidatesByPosition, row.PositionID),
	}

	if err := uc.cache.Delete(ctx, keys...); err != nil {
		logger.Error("Failed to invalidate result caches",
			logger.String("reference", row.Reference),
			logger.Strings("keys", keys),
			logger.Err(err))
	}
}

func receiptFor(row *models.ReceiptRow) *models.Receipt {
	var message string
	switch row.Status {
	case models.PaymentStatusSuccess:
		message = "Payment verified successfully. Your votes have been recorded."
	case models.PaymentStatusFailed:
		message = "Payment was not successful. No votes were recorded."
	default:
		message = "Payment is still being processed."
	}

	return &models.Receipt{
		Reference:     row.Reference,
		Amount:        models.MinorToMajor(row.Amount),
		VoteCount:     row.VoteCount,
		CandidateName: row.CandidateName,
		PositionName:  row.PositionName,
		Status:        row.Status,
		Message:       message,
	}
}
