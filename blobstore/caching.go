package blobstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a slow remote Store with an in-memory read cache.
// Concurrent Gets for the same key are coalesced into a single backend
// call. Writes go through to the backend and update the cache, so a
// session that saves after every mutation never re-fetches its own data.
type CachingStore struct {
	inner Store

	mu    sync.RWMutex
	cache map[string][]byte
	group singleflight.Group
}

// NewCachingStore creates a CachingStore around inner.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Get returns the cached value for key, fetching it from the backend on a
// miss. Misses for the same key are deduplicated via singleflight.
func (s *CachingStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		copied := make([]byte, len(data))
		copy(copied, data)
		return copied, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		data, err := s.inner.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	data = v.([]byte)
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Put writes through to the backend and refreshes the cache entry.
func (s *CachingStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.inner.Put(ctx, key, data); err != nil {
		return err
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	s.mu.Lock()
	s.cache[key] = copied
	s.mu.Unlock()
	return nil
}

// Delete removes the key from the backend and invalidates the cache entry.
func (s *CachingStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}
