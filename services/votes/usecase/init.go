package usecase

import (
	"time"

	"github.com/piresc/evoting/internal/pkg/cache"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/settings"
	"github.com/piresc/evoting/services/votes"
)

// VotesUC implements votes.VotesUC
type VotesUC struct {
	cfg         *models.Config
	votesRepo   votes.VotesRepo
	sessionRepo votes.SessionRepo
	settingsUC  settings.SettingsUC
	paymentGW   votes.PaymentGW
	eventsGW    votes.EventsGW
	cache       cache.Cache
	now         func() time.Time
}

// NewVotesUC creates a new votes usecase instance
func NewVotesUC(
	cfg *models.Config,
	votesRepo votes.VotesRepo,
	sessionRepo votes.SessionRepo,
	settingsUC settings.SettingsUC,
	paymentGW votes.PaymentGW,
	eventsGW votes.EventsGW,
	c cache.Cache,
) *VotesUC {
	return &VotesUC{
		cfg:         cfg,
		votesRepo:   votesRepo,
		sessionRepo: sessionRepo,
		settingsUC:  settingsUC,
		paymentGW:   paymentGW,
		eventsGW:    eventsGW,
		cache:       c,
		now:         time.Now,
	}
}
