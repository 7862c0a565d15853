package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/database"
)

// SessionRepo keeps the payment reference of a browser session in Redis
type SessionRepo struct {
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{redisClient: redisClient}
}

// PutPaymentRef stores the reference for the redirect to pick up
func (r *SessionRepo) PutPaymentRef(ctx context.Context, sessionID, reference string) error {
	key := fmt.Sprintf(constants.KeySessionPaymentRef, sessionID)
	if err := r.redisClient.Set(ctx, key, reference, constants.TTLSessionSlot); err != nil {
		return fmt.Errorf("failed to store session payment reference: %w", err)
	}
	return nil
}

// TakePaymentRef reads and clears the stored reference
func (r *SessionRepo) TakePaymentRef(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constants.KeySessionPaymentRef, sessionID)
	ref, err := r.redisClient.GetDel(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session payment reference: %w", err)
	}
	return ref, nil
}
