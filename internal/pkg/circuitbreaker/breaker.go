package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/evoting/internal/pkg/logger"
)

// State represents the breaker state
type State int

const (
	// StateClosed lets calls through and counts failures
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down elapses
	StateOpen
	// StateHalfOpen lets a single probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen is returned without calling the wrapped function while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// Config holds breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	CoolDown         time.Duration // time spent open before a probe is allowed
	IsFailure        func(err error) bool
}

// DefaultConfig returns the settings used for payment provider calls
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		CoolDown:         30 * time.Second,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	}
}

// CircuitBreaker guards calls to a flaky dependency
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
	probing  bool
}

// New creates a closed breaker
func New(config Config) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 1
	}
	return &CircuitBreaker{config: config, now: time.Now}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.CoolDown {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if cb.config.IsFailure(err) {
		cb.failures++
		if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
			cb.openedAt = cb.now()
			cb.setState(StateOpen)
		}
		return
	}

	cb.failures = 0
	if cb.state != StateClosed {
		cb.setState(StateClosed)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int64("consecutive_failures", int64(cb.failures)))
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Name returns the breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}
