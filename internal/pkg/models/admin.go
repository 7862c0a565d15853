package models

import (
	"time"
)

// Admin roles
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// OTP rules for the admin second factor
const (
	OTPLength      = 8
	OTPMaxAttempts = 3
	OTPTTL         = 5 * time.Minute
)

// OTPAttemptResult is the outcome of comparing one guess against the live OTP
type OTPAttemptResult int

const (
	OTPNotFound OTPAttemptResult = iota
	OTPMismatch
	OTPExhausted
	OTPVerified
)

// IsValidRole reports whether role names a known admin role
func IsValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}

// AdminUser is a back-office account
type AdminUser struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AdminOTP is the second login factor. At most one live row per email.
type AdminOTP struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Code         string    `json:"-" db:"otp_code"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	AttemptCount int       `json:"attempt_count" db:"attempt_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// OTPIssuedEvent is handed to the delivery channel
type OTPIssuedEvent struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest is the first login factor
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest is the second login factor
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=8,numeric"`
}

// OTPStatus reports the guess budget of the live OTP
type OTPStatus struct {
	RateLimited       bool `json:"rate_limited"`
	RemainingAttempts int  `json:"remaining_attempts"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// LoginResponse acknowledges the first factor without revealing the code
type LoginResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateAdminRequest provisions a back-office account
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin"`
}
