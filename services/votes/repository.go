package votes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/evoting/services/votes VotesRepo,SessionRepo

// VotesRepo defines catalog reads and the vote/payment pair persistence
type VotesRepo interface {
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
	ListActivePositions(ctx context.Context) ([]models.Position, error)
	GetPosition(ctx context.Context, id int64) (*models.Position, error)
	GetCandidate(ctx context.Context, id int64) (*models.Candidate, error)
	ListCandidatesByPosition(ctx context.Context, positionID int64) ([]models.Candidate, error)

	// CreatePendingVote stores the payment and its vote in one transaction
	CreatePendingVote(ctx context.Context, payment *models.Payment, vote *models.Vote) error
	GetReceipt(ctx context.Context, reference string) (*models.ReceiptRow, error)
	// SaveProviderResponse records the checkout response on a still pending payment
	SaveProviderResponse(ctx context.Context, reference string, providerResponse json.RawMessage) error
	// SettlePayment moves a pending pair to a final status and reports whether this call did it
	SettlePayment(ctx context.Context, reference string, status models.PaymentStatus, providerResponse json.RawMessage, settledAt time.Time) (bool, error)
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]string, error)
}

// SessionRepo holds the one-shot payment reference of a browser session
type SessionRepo interface {
	PutPaymentRef(ctx context.Context, sessionID, reference string) error
	// TakePaymentRef returns and clears the stored reference, or "" when none
	TakePaymentRef(ctx context.Context, sessionID string) (string, error)
}
