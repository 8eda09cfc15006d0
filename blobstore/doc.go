// Package blobstore provides the key-value storage abstraction markbook
// persists its snapshots to.
//
// Store is a minimal get/put/delete interface over opaque byte values.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and throwaway sessions
//   - LocalStore: local filesystem with atomic rename writes
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3
//   - redis.Store: Redis string keys
//
// # Wrappers
//
//   - CachingStore: read-through cache with singleflight coalescing,
//     for slow remote backends
//   - ThrottledStore: token-bucket byte-rate limiting
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Get(ctx, key) ([]byte, error)   // ErrNotFound if absent
//	    Put(ctx, key, data) error       // atomic replace
//	    Delete(ctx, key) error
//	}
package blobstore
