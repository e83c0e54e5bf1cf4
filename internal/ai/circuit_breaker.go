package ai

import (
	"github.com/sony/gobreaker/v2"

	"searchfind/internal/config"
	"searchfind/internal/errors"
)

// Breaker wraps calls returning T with the circuit breaker pattern. A nil
// Breaker runs calls directly.
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// TripPolicy decides when a breaker opens
type TripPolicy struct {
	MinRequests      uint32
	FailureThreshold float64
}

// NewBreaker creates a breaker named name, or nil when the config disables it
func NewBreaker[T any](name string, cfg config.CircuitBreakerConfig, trip TripPolicy, logger *errors.Logger) *Breaker[T] {
	if !cfg.Enabled {
		return nil
	}
	if logger == nil {
		logger = errors.NopLogger()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= trip.MinRequests && failureRatio >= trip.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.MaxRequests,
				"failure_threshold", trip.FailureThreshold)
		},
	}

	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// operationTrip uses the configured thresholds
func operationTrip(cfg config.CircuitBreakerConfig) TripPolicy {
	return TripPolicy{MinRequests: cfg.MinRequests, FailureThreshold: cfg.FailureThreshold}
}

// modelCheckTrip is more lenient; model info only feeds health checks
var modelCheckTrip = TripPolicy{MinRequests: 5, FailureThreshold: 0.8}

// Execute runs fn with circuit breaker protection
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// Stats returns circuit breaker statistics
func (b *Breaker[T]) Stats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true if the breaker is closed or disabled
func (b *Breaker[T]) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}
