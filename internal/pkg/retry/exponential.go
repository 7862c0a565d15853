package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/evoting/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries  int              // attempts after the first one
	BaseDelay   time.Duration    // delay before the first retry
	MaxDelay    time.Duration    // upper bound for a single delay
	Multiplier  float64          // exponential backoff multiplier
	Jitter      bool             // add up to 10% random delay
	IsRetryable func(error) bool // nil retries every error
}

// DefaultConfig returns the backoff used for event publishing
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	return &Retrier{config: config, sleep: sleepCtx}
}

// Execute runs fn until it succeeds, the error is not retryable, attempts run out or ctx ends
func (r *Retrier) Execute(ctx context.Context, operation string, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retries",
					logger.String("operation", operation),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.IsRetryable != nil && !r.config.IsRetryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.Debug("Operation failed, retrying",
			logger.String("operation", operation),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	logger.Error("Operation failed after all retries",
		logger.String("operation", operation),
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
