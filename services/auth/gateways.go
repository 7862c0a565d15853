package auth

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/evoting/services/auth AuthGW

// AuthGW delivers OTP codes out of band
type AuthGW interface {
	PublishOTPIssued(ctx context.Context, event models.OTPIssuedEvent) error
}
