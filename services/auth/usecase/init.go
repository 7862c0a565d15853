package usecase

import (
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/auth"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	cfg      *models.Config
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	now      func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(cfg *models.Config, authRepo auth.AuthRepo, authGW auth.AuthGW) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		authRepo: authRepo,
		authGW:   authGW,
		now:      time.Now,
	}
}
