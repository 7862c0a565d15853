package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("provider unavailable")

func failing(context.Context) error { return errUpstream }
func passing(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{Name: "paystack", FailureThreshold: 2, CoolDown: time.Minute})

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	now := time.Now()
	cb := New(Config{Name: "paystack", FailureThreshold: 1, CoolDown: 10 * time.Second})
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(11 * time.Second)
	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	now := time.Now()
	cb := New(Config{Name: "paystack", FailureThreshold: 3, CoolDown: time.Second})
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), passing), ErrOpen)
}

func TestDefaultConfig_IgnoresCancellation(t *testing.T) {
	cfg := DefaultConfig("paystack")

	assert.False(t, cfg.IsFailure(context.Canceled))
	assert.True(t, cfg.IsFailure(errUpstream))
	assert.False(t, cfg.IsFailure(nil))
}
