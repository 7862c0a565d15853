package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/jwt"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// Login checks the password and sends a fresh OTP out of band
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	admin, err := uc.authRepo.GetAdminByEmail(ctx, email)
	if apperror.Is(err, apperror.KindNotFound) {
		logger.Warn("Login for unknown admin", logger.String("email", utils.MaskEmail(email)))
		return nil, apperror.Auth(invalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	if !admin.IsActive {
		logger.Warn("Login for inactive admin", logger.String("admin_id", admin.ID))
		return nil, apperror.Auth(invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login with wrong password", logger.String("admin_id", admin.ID))
		return nil, apperror.Auth(invalidCredentials)
	}

	otp, err := uc.GenerateOTP(ctx, email)
	if err != nil {
		return nil, err
	}

	if uc.cfg.App.Environment != "production" {
		logger.Debug("OTP issued", logger.String("email", email), logger.String("code", otp.Code))
	}

	event := models.OTPIssuedEvent{Email: email, Code: otp.Code, ExpiresAt: otp.ExpiresAt}
	if err := uc.authGW.PublishOTPIssued(ctx, event); err != nil {
		logger.Error("Failed to deliver OTP", logger.String("admin_id", admin.ID), logger.Err(err))
		return nil, apperror.Upstream("Could not deliver the verification code", err)
	}

	logger.Info("OTP issued", logger.String("admin_id", admin.ID))

	return &models.LoginResponse{Email: email, ExpiresAt: otp.ExpiresAt}, nil
}

// VerifyOTP checks the second factor and issues a session token
func (uc *AuthUC) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	limited, err := uc.IsRateLimited(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := uc.VerifyCode(ctx, email, req.OTP)
	if err != nil {
		return nil, err
	}
	if limited {
		return nil, apperror.New(apperror.KindRateLimited, "Too many failed attempts. Request a new code.")
	}
	if !ok {
		remaining, err := uc.RemainingAttempts(ctx, email)
		if err != nil {
			return nil, err
		}
		if remaining == 0 {
			return nil, apperror.New(apperror.KindRateLimited, "Too many failed attempts. Request a new code.")
		}
		return nil, &apperror.Error{
			Kind:    apperror.KindAuth,
			Message: "Invalid or expired code",
			Fields:  map[string]string{"remaining_attempts": fmt.Sprintf("%d", remaining)},
		}
	}

	admin, err := uc.authRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, apperror.Auth("Account is disabled")
	}

	token, expiresAt, err := jwt.GenerateToken(admin.ID, admin.Email, admin.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Admin logged in", logger.String("admin_id", admin.ID), logger.String("role", admin.Role))

	return &models.AuthResponse{
		Token:     token,
		AdminID:   admin.ID,
		Email:     admin.Email,
		Role:      admin.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// CreateAdmin provisions an admin account with a bcrypt password hash
func (uc *AuthUC) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.AdminUser, error) {
	if !models.IsValidRole(req.Role) {
		return nil, apperror.Validation("The given data was invalid.", map[string]string{"role": "role must be super_admin or admin"})
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, apperror.Validation("The given data was invalid.", map[string]string{"email": "email must be a valid email address"})
	}

	if len(req.Password) < 8 {
		return nil, apperror.Validation("The given data was invalid.", map[string]string{"password": "password must be at least 8 characters"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.now()
	admin := &models.AdminUser{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        utils.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.authRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin created", logger.String("admin_id", admin.ID), logger.String("role", admin.Role))
	return admin, nil
}
