package repository

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

const liveOTPCondition = `email = $1 AND is_verified = false AND expires_at > NOW()`

// ReplaceOTP deletes every OTP row of the email and inserts the new one
func (r *AuthRepo) ReplaceOTP(ctx context.Context, otp *models.AdminOTP) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM admin_otps WHERE email = $1`, otp.Email); err != nil {
		return fmt.Errorf("failed to delete previous OTPs: %w", err)
	}

	query := `
		INSERT INTO admin_otps (id, email, otp_code, expires_at, is_verified, attempt_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, query,
		otp.ID,
		otp.Email,
		otp.Code,
		otp.ExpiresAt,
		otp.IsVerified,
		otp.AttemptCount,
		otp.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit OTP: %w", err)
	}

	return nil
}

// AttemptOTP locks the live OTP of the email and applies one guess to it.
// An exhausted row is deleted, a match is marked verified and a mismatch
// consumes one attempt.
func (r *AuthRepo) AttemptOTP(ctx context.Context, email, code string, maxAttempts int) (models.OTPAttemptResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.OTPNotFound, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var otp models.AdminOTP
	query := `
		SELECT id, email, otp_code, expires_at, is_verified, attempt_count, created_at
		FROM admin_otps
		WHERE ` + liveOTPCondition + `
		FOR UPDATE
	`
	if err := tx.GetContext(ctx, &otp, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OTPNotFound, nil
		}
		return models.OTPNotFound, fmt.Errorf("failed to lock OTP: %w", err)
	}

	var result models.OTPAttemptResult
	switch {
	case otp.AttemptCount >= maxAttempts:
		if _, err := tx.ExecContext(ctx, `DELETE FROM admin_otps WHERE id = $1`, otp.ID); err != nil {
			return models.OTPNotFound, fmt.Errorf("failed to delete exhausted OTP: %w", err)
		}
		result = models.OTPExhausted
	case subtle.ConstantTimeCompare([]byte(otp.Code), []byte(code)) == 1:
		if _, err := tx.ExecContext(ctx, `UPDATE admin_otps SET is_verified = true WHERE id = $1`, otp.ID); err != nil {
			return models.OTPNotFound, fmt.Errorf("failed to mark OTP verified: %w", err)
		}
		result = models.OTPVerified
	default:
		if _, err := tx.ExecContext(ctx, `UPDATE admin_otps SET attempt_count = attempt_count + 1 WHERE id = $1`, otp.ID); err != nil {
			return models.OTPNotFound, fmt.Errorf("failed to record OTP attempt: %w", err)
		}
		result = models.OTPMismatch
	}

	if err := tx.Commit(); err != nil {
		return models.OTPNotFound, fmt.Errorf("failed to commit OTP attempt: %w", err)
	}

	return result, nil
}

// GetLiveOTP returns the unverified, unexpired OTP of the email
func (r *AuthRepo) GetLiveOTP(ctx context.Context, email string) (*models.AdminOTP, error) {
	query := `
		SELECT id, email, otp_code, expires_at, is_verified, attempt_count, created_at
		FROM admin_otps
		WHERE ` + liveOTPCondition

	var otp models.AdminOTP
	if err := r.db.GetContext(ctx, &otp, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("no live OTP")
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// DeleteExpiredOTPs removes every OTP past its expiry
func (r *AuthRepo) DeleteExpiredOTPs(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_otps WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired OTPs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted OTPs: %w", err)
	}

	return n, nil
}
