package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a key does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for the persistent key-value storage markbook
// saves its transport snapshots to.
//
// Implementations must be safe for concurrent use. Put must be atomic:
// a concurrent Get observes either the previous value or the new one,
// never a partial write.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes the value under key atomically, replacing any prior value.
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes the value under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
