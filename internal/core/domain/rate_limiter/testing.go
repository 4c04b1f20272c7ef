package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	DoNotAllow bool
	Keys       []string
	lock       sync.Mutex
}

func NewFakeRateLimiter(doNotAllow bool) *FakeRateLimiter {
	return &FakeRateLimiter{DoNotAllow: doNotAllow}
}

func (f *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Keys = append(f.Keys, key)
	if f.DoNotAllow {
		return NotAllowed()
	}
	return Allowed()
}
