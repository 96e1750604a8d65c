package dac

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-unit rate limiters: unit_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(unitID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[unitID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[unitID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(unitID string, unitRate rate.Limit, unitBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[unitID] = rate.NewLimiter(unitRate, unitBurst)
}
