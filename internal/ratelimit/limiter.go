package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// OperationLimiter throttles calls to the upstream provider per
// operation (search, locations, pricing, booking), so a burst of
// autocomplete lookups cannot starve booking submissions.
type OperationLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewOperationLimiter(config RateLimitConfig) *OperationLimiter {
	return &OperationLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewOperationLimiterWithDefaults() *OperationLimiter {
	return NewOperationLimiter(DefaultConfig())
}

func (l *OperationLimiter) GetLimiter(op string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[op]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[op]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[op] = limiter
	return limiter
}

func (l *OperationLimiter) SetOperationLimit(op string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[op] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (l *OperationLimiter) Wait(ctx context.Context, op string) error {
	return l.GetLimiter(op).Wait(ctx)
}
