package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

// Verify polls the provider for a pending reference and settles it
func (uc *VotesUC) Verify(ctx context.Context, reference string) (*models.Receipt, error) {
	receipt, _, err := uc.verify(ctx, reference)
	return receipt, err
}

// verify also reports whether this call performed the settlement
func (uc *VotesUC) verify(ctx context.Context, reference string) (*models.Receipt, bool, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, false, apperror.Validation("The given data was invalid.", map[string]string{"reference": "reference is required"})
	}

	memoKey := fmt.Sprintf(constants.KeyPaymentVerified, reference)
	var memo models.Receipt
	found, err := uc.cache.Get(ctx, memoKey, &memo)
	if err != nil {
		logger.Warn("Verified memo read failed", logger.String("reference", reference), logger.Err(err))
	} else if found {
		return &memo, false, nil
	}

	row, err := uc.votesRepo.GetReceipt(ctx, reference)
	if err != nil {
		return nil, false, err
	}
	if row.Status.IsFinal() {
		return receiptFor(row), false, nil
	}

	result := uc.paymentGW.VerifyTransaction(ctx, reference)
	if !result.Status {
		message := result.Message
		if message == "" {
			message = "Unable to verify payment"
		}
		return nil, false, apperror.Upstream(message, nil)
	}

	status := models.SettlementStatus(result.Data.Status)
	if status == models.PaymentStatusPending {
		return receiptFor(row), false, nil
	}
	if status == models.PaymentStatusSuccess && result.Data.Amount != 0 && result.Data.Amount != row.Amount {
		logger.Warn("Provider amount differs from stored amount",
			logger.String("reference", reference),
			logger.Int64("provider_amount", result.Data.Amount),
			logger.Int64("stored_amount", row.Amount))
	}

	transitioned, err := uc.settle(ctx, row, status, result.Raw)
	if err != nil {
		return nil, false, err
	}
	if !transitioned {
		// another trigger won; report what it stored
		if row, err = uc.votesRepo.GetReceipt(ctx, reference); err != nil {
			return nil, false, err
		}
	}

	return receiptFor(row), transitioned, nil
}

// HandleWebhook settles a reference from a signed provider notification.
// Only a bad signature is reported back; everything else is acknowledged.
func (uc *VotesUC) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !uc.validSignature(body, signature) {
		logger.Warn("Rejected webhook with invalid signature", logger.Int("body_bytes", len(body)))
		return apperror.New(apperror.KindSignature, "Invalid signature")
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Ignoring malformed webhook", logger.Err(err))
		return nil
	}

	var status models.PaymentStatus
	switch event.Event {
	case models.EventChargeSuccess:
		status = models.PaymentStatusSuccess
	case models.EventChargeFailed:
		status = models.PaymentStatusFailed
	default:
		logger.Info("Ignoring webhook event", logger.String("event", event.Event))
		return nil
	}

	reference := event.Data.Reference
	if reference == "" {
		logger.Warn("Webhook without reference", logger.String("event", event.Event))
		return nil
	}

	row, err := uc.votesRepo.GetReceipt(ctx, reference)
	if err != nil {
		logger.Warn("Webhook for unknown payment", logger.String("reference", reference), logger.Err(err))
		return nil
	}
	if row.Status.IsFinal() {
		return nil
	}

	if _, err := uc.settle(ctx, row, status, body); err != nil {
		logger.Error("Webhook settlement failed", logger.String("reference", reference), logger.Err(err))
	}
	return nil
}

// CompleteRedirect verifies the payment a returning browser points at
func (uc *VotesUC) CompleteRedirect(ctx context.Context, reference, sessionID string) models.RedirectOutcome {
	if sessionID != "" {
		stored, err := uc.sessionRepo.TakePaymentRef(ctx, sessionID)
		if err != nil {
			logger.Warn("Session payment reference unavailable", logger.Err(err))
		}
		if reference == "" {
			reference = stored
		}
	}

	if reference == "" {
		return models.RedirectOutcome{ErrorCode: models.RedirectMissingReference}
	}

	receipt, settled, err := uc.verify(ctx, reference)
	switch {
	case apperror.Is(err, apperror.KindNotFound):
		return models.RedirectOutcome{Reference: reference, ErrorCode: models.RedirectPaymentNotFound}
	case err != nil:
		logger.Warn("Redirect verification failed", logger.String("reference", reference), logger.Err(err))
		return models.RedirectOutcome{Reference: reference, ErrorCode: models.RedirectVerificationFailed}
	}

	switch receipt.Status {
	case models.PaymentStatusSuccess:
		if !settled {
			uc.refreshSettledCaches(ctx, reference)
		}
		return models.RedirectOutcome{Reference: reference, Success: true}
	case models.PaymentStatusFailed:
		return models.RedirectOutcome{Reference: reference, ErrorCode: models.RedirectPaymentFailed}
	default:
		return models.RedirectOutcome{Reference: reference, ErrorCode: models.RedirectPaymentPending}
	}
}

// refreshSettledCaches drops result caches for a reference settled by an earlier trigger
func (uc *VotesUC) refreshSettledCaches(ctx context.Context, reference string) {
	row, err := uc.votesRepo.GetReceipt(ctx, reference)
	if err != nil {
		logger.Warn("Cache refresh skipped", logger.String("reference", reference), logger.Err(err))
		return
	}
	uc.invalidateAfterSuccess(ctx, row)
}

func (uc *VotesUC) validSignature(body []byte, signature string) bool {
	secret := uc.cfg.Paystack.SecretKey
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
