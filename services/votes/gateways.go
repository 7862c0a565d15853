package votes

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/evoting/services/votes PaymentGW,EventsGW

// PaymentGW is the payment provider adapter. Failures come back as Status false.
type PaymentGW interface {
	InitializeTransaction(ctx context.Context, payload models.InitializeTransactionPayload) models.InitializeTransactionResult
	VerifyTransaction(ctx context.Context, reference string) models.VerifyTransactionResult
}

// EventsGW publishes settlement events
type EventsGW interface {
	PublishVoteSettled(ctx context.Context, event models.VoteSettledEvent) error
}
