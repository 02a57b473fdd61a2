package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle is the pluggable rate-limiter interface the core honors before
// every outbound LLM call.
type Throttle interface {
	// Wait blocks until a call is permitted or ctx is done.
	Wait(ctx context.Context) error
}

// RateLimiterThrottle adapts golang.org/x/time/rate.Limiter to Throttle.
type RateLimiterThrottle struct {
	limiter *rate.Limiter
}

var _ Throttle = (*RateLimiterThrottle)(nil)

// NewRateLimiterThrottle creates a throttle allowing ratePerSecond calls
// per second, with the given burst size.
func NewRateLimiterThrottle(ratePerSecond float64, burst int) *RateLimiterThrottle {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiterThrottle{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Wait blocks until the limiter admits a call or ctx is done.
func (t *RateLimiterThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// NoThrottle never blocks; useful for tests and fakes.
type NoThrottle struct{}

var _ Throttle = NoThrottle{}

// Wait always returns immediately.
func (NoThrottle) Wait(ctx context.Context) error { return nil }
