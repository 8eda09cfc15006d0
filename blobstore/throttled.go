package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store with a token-bucket limit on transferred
// bytes per second. Useful when the backing store is shared (an object
// store, a busy Redis) and snapshot traffic should not starve it.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore allowing bytesPerSec of
// combined read/write traffic. If bytesPerSec <= 0, no limit is applied.
func NewThrottledStore(inner Store, bytesPerSec int) *ThrottledStore {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &ThrottledStore{inner: inner, limiter: limiter}
}

func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	if s.limiter == nil || n <= 0 {
		return nil
	}
	if n > s.limiter.Burst() {
		n = s.limiter.Burst()
	}
	return s.limiter.WaitN(ctx, n)
}

// Get fetches the value and charges its size against the rate budget.
func (s *ThrottledStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Put charges the payload size against the rate budget before writing.
func (s *ThrottledStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, key, data)
}

// Delete passes through without charging the budget.
func (s *ThrottledStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
