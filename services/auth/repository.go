package auth

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/evoting/services/auth AuthRepo

// AuthRepo defines admin account and OTP persistence
type AuthRepo interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, admin *models.AdminUser) error

	// ReplaceOTP removes every OTP of the email and stores the new one
	ReplaceOTP(ctx context.Context, otp *models.AdminOTP) error
	// AttemptOTP compares one guess against the live OTP under a row lock
	AttemptOTP(ctx context.Context, email, code string, maxAttempts int) (models.OTPAttemptResult, error)
	GetLiveOTP(ctx context.Context, email string) (*models.AdminOTP, error)
	DeleteExpiredOTPs(ctx context.Context) (int64, error)
}
