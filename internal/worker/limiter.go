package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces requests to the annotation service. Novels are annotated
// chunk by chunk and the service is shared, so chunk requests must not
// burst past the configured rate.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond with the given burst
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until the next request is allowed or the context is done
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
