package auth

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/evoting/services/auth AuthUC

// AuthUC defines the admin login flow
type AuthUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error)
	OTPStatus(ctx context.Context, email string) (*models.OTPStatus, error)
	CleanupExpired(ctx context.Context) (int64, error)
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.AdminUser, error)
}
