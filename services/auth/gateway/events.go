package gateway

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/pkg/nsq"
)

// AuthGW publishes auth events to NSQ
type AuthGW struct {
	publisher nsq.Publisher
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(publisher nsq.Publisher) *AuthGW {
	return &AuthGW{publisher: publisher}
}

// PublishOTPIssued hands an OTP to the delivery worker
func (g *AuthGW) PublishOTPIssued(ctx context.Context, event models.OTPIssuedEvent) error {
	return g.publisher.Publish(ctx, nsq.TopicAdminOTPIssued, event)
}
