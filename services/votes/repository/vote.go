package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

func jsonOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

// CreatePendingVote inserts the payment and its vote atomically
func (r *VotesRepo) CreatePendingVote(ctx context.Context, payment *models.Payment, vote *models.Vote) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	paymentQuery := `
		INSERT INTO payments (id, reference, amount, status, email, phone, metadata, provider_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.ExecContext(ctx, paymentQuery,
		payment.ID,
		payment.Reference,
		payment.Amount,
		payment.Status,
		payment.Email,
		payment.Phone,
		jsonOrEmpty(payment.Metadata),
		jsonOrEmpty(payment.ProviderResponse),
		payment.CreatedAt,
		payment.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	voteQuery := `
		INSERT INTO votes (id, candidate_id, position_id, payment_reference, vote_count, amount, voter_email, voter_phone, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := tx.ExecContext(ctx, voteQuery,
		vote.ID,
		vote.CandidateID,
		vote.PositionID,
		vote.PaymentReference,
		vote.VoteCount,
		vote.Amount,
		vote.VoterEmail,
		vote.VoterPhone,
		vote.PaymentStatus,
		vote.CreatedAt,
		vote.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

// GetReceipt loads the joined payment, vote, candidate and position of a reference
func (r *VotesRepo) GetReceipt(ctx context.Context, reference string) (*models.ReceiptRow, error) {
	query := `
		SELECT p.reference, p.amount, p.status, v.vote_count, v.voter_email,
			c.id AS candidate_id, c.name AS candidate_name,
			pos.id AS position_id, pos.name AS position_name, pos.category_id
		FROM payments p
		JOIN votes v ON v.payment_reference = p.reference
		JOIN candidates c ON c.id = v.candidate_id
		JOIN positions pos ON pos.id = v.position_id
		WHERE p.reference = $1
	`

	var row models.ReceiptRow
	if err := r.db.GetContext(ctx, &row, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Payment not found")
		}
		return nil, fmt.Errorf("failed to get receipt %s: %w", reference, err)
	}
	return &row, nil
}

// SaveProviderResponse stores the initialize response. Settled payments keep theirs.
func (r *VotesRepo) SaveProviderResponse(ctx context.Context, reference string, providerResponse json.RawMessage) error {
	query := `
		UPDATE payments
		SET provider_response = $2, updated_at = NOW()
		WHERE reference = $1 AND status = 'pending'
	`
	if _, err := r.db.ExecContext(ctx, query, reference, jsonOrEmpty(providerResponse)); err != nil {
		return fmt.Errorf("failed to save provider response %s: %w", reference, err)
	}
	return nil
}

// SettlePayment applies the pending to final transition to both rows of a reference.
// The conditional update on payments is the guard: only the caller that flips it
// from pending updates the vote and gets true back.
func (r *VotesRepo) SettlePayment(ctx context.Context, reference string, status models.PaymentStatus, providerResponse json.RawMessage, settledAt time.Time) (bool, error) {
	if !models.PaymentStatusPending.CanTransitionTo(status) {
		return false, fmt.Errorf("invalid settlement status %q", status)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $2, provider_response = $3, updated_at = $4
		WHERE reference = $1 AND status = 'pending'
	`, reference, status, jsonOrEmpty(providerResponse), settledAt)
	if err != nil {
		return false, fmt.Errorf("failed to settle payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read settled rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	var votedAt *time.Time
	if status == models.PaymentStatusSuccess {
		votedAt = &settledAt
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE votes
		SET payment_status = $2, voted_at = $3, updated_at = $4
		WHERE payment_reference = $1 AND payment_status = 'pending'
	`, reference, status, votedAt, settledAt); err != nil {
		return false, fmt.Errorf("failed to settle vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit settlement: %w", err)
	}
	return true, nil
}

// ListStalePending returns references still pending since before the cutoff
func (r *VotesRepo) ListStalePending(ctx context.Context, before time.Time, limit int) ([]string, error) {
	query := `
		SELECT reference
		FROM payments
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`

	refs := []string{}
	if err := r.db.SelectContext(ctx, &refs, query, before, limit); err != nil {
		return nil, fmt.Errorf("failed to list stale payments: %w", err)
	}
	return refs, nil
}
