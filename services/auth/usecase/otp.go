package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
)

// GenerateOTP replaces any OTP of the email with a fresh 8 digit code
func (uc *AuthUC) GenerateOTP(ctx context.Context, email string) (*models.AdminOTP, error) {
	code, err := utils.GenerateNumericCode(models.OTPLength)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	otp := &models.AdminOTP{
		ID:        uuid.New().String(),
		Email:     utils.NormalizeEmail(email),
		Code:      code,
		ExpiresAt: now.Add(models.OTPTTL),
		CreatedAt: now,
	}

	if err := uc.authRepo.ReplaceOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	return otp, nil
}

// VerifyCode applies one guess and reports whether it verified the live OTP
func (uc *AuthUC) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	result, err := uc.authRepo.AttemptOTP(ctx, utils.NormalizeEmail(email), code, models.OTPMaxAttempts)
	if err != nil {
		return false, fmt.Errorf("failed to verify OTP: %w", err)
	}

	if result == models.OTPExhausted {
		logger.Warn("Exhausted OTP discarded", logger.String("email", utils.MaskEmail(email)))
	}

	return result == models.OTPVerified, nil
}

// IsRateLimited reports whether the live OTP has used up its guesses
func (uc *AuthUC) IsRateLimited(ctx context.Context, email string) (bool, error) {
	otp, err := uc.liveOTP(ctx, email)
	if err != nil || otp == nil {
		return false, err
	}
	return otp.AttemptCount >= models.OTPMaxAttempts, nil
}

// RemainingAttempts returns the guesses left on the live OTP, or the full budget when none exists
func (uc *AuthUC) RemainingAttempts(ctx context.Context, email string) (int, error) {
	otp, err := uc.liveOTP(ctx, email)
	if err != nil {
		return 0, err
	}
	if otp == nil {
		return models.OTPMaxAttempts, nil
	}

	remaining := models.OTPMaxAttempts - otp.AttemptCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// OTPStatus reports the guess budget of the email
func (uc *AuthUC) OTPStatus(ctx context.Context, email string) (*models.OTPStatus, error) {
	remaining, err := uc.RemainingAttempts(ctx, email)
	if err != nil {
		return nil, err
	}

	return &models.OTPStatus{
		RateLimited:       remaining == 0,
		RemainingAttempts: remaining,
	}, nil
}

// CleanupExpired deletes OTPs past their expiry
func (uc *AuthUC) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := uc.authRepo.DeleteExpiredOTPs(ctx)
	if err != nil {
		return 0, err
	}

	logger.Info("Expired OTPs cleaned up", logger.Int64("deleted", n))
	return n, nil
}

func (uc *AuthUC) liveOTP(ctx context.Context, email string) (*models.AdminOTP, error) {
	otp, err := uc.authRepo.GetLiveOTP(ctx, utils.NormalizeEmail(email))
	if apperror.Is(err, apperror.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}
	return otp, nil
}
