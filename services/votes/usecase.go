package votes

import (
	"context"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/evoting/services/votes VotesUC

// VotesUC defines the voter facing catalog and the reconciliation engine
type VotesUC interface {
	ListCategories(ctx context.Context) ([]models.CategoryListing, error)
	ListCandidates(ctx context.Context, positionID int64) ([]models.Candidate, error)

	Initialize(ctx context.Context, req models.InitializeVoteRequest, sessionID string) (*models.InitializeVoteResponse, error)
	Verify(ctx context.Context, reference string) (*models.Receipt, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	CompleteRedirect(ctx context.Context, reference, sessionID string) models.RedirectOutcome
	ExpirePending(ctx context.Context, olderThan time.Duration) (int, error)
}
