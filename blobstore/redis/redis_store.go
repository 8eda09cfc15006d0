// Package redis provides a blobstore.Store backed by Redis string keys.
//
// Snapshots are small (a mark book holds at most a class worth of rows),
// so a plain SET/GET per key is all this needs.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/markbook/blobstore"
	"github.com/redis/go-redis/v9"
)

// Store implements blobstore.Store on a Redis client.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Ensure Store implements blobstore.Store
var _ blobstore.Store = (*Store)(nil)

// NewStore creates a new Redis-backed store. keyPrefix is prepended to
// every key. ttl of 0 means keys never expire.
func NewStore(client *redis.Client, keyPrefix string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
	}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, blobstore.ErrNotFound
	}
	return data, err
}

// Put writes the value under key atomically.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.prefix+key, data, s.ttl).Err()
}

// Delete removes the value under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
