package ratelimiter

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// OutboundLimiter throttles calls to the backend, one token bucket per key.
// A nil *OutboundLimiter never blocks.
type OutboundLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewOutboundLimiter returns nil when requestsPerSecond is not positive.
func NewOutboundLimiter(requestsPerSecond int) *OutboundLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return &OutboundLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    requestsPerSecond,
	}
}

func (l *OutboundLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

// Wait blocks until key may make another call or ctx is done.
func (l *OutboundLimiter) Wait(ctx context.Context, key string) error {
	if l == nil {
		return nil
	}
	return l.limiterFor(key).Wait(ctx)
}
