package blobstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "k", []byte("v1")))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "k", []byte("v2")))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		got[0] = 'X'

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), again)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "k"))
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting an absent key is fine
		assert.NoError(t, store.Delete(ctx, "k"))
	})
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutGetOverwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "book", []byte("first")))
		require.NoError(t, store.Put(ctx, "book", []byte("second")))

		got, err := store.Get(ctx, "book")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "book"))
		_, err := store.Get(ctx, "book")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, store.Delete(ctx, "book"))
	})
}

// countingStore counts backend Gets to observe caching behavior.
type countingStore struct {
	Store
	gets atomic.Int64
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, key)
}

func TestCachingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadThrough", func(t *testing.T) {
		backend := &countingStore{Store: NewMemoryStore()}
		require.NoError(t, backend.Store.Put(ctx, "k", []byte("v")))
		store := NewCachingStore(backend)

		for range 3 {
			got, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v"), got)
		}
		assert.Equal(t, int64(1), backend.gets.Load())
	})

	t.Run("MissPropagates", func(t *testing.T) {
		store := NewCachingStore(NewMemoryStore())
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutRefreshesCache", func(t *testing.T) {
		backend := &countingStore{Store: NewMemoryStore()}
		store := NewCachingStore(backend)

		require.NoError(t, store.Put(ctx, "k", []byte("v1")))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)
		assert.Equal(t, int64(0), backend.gets.Load())
	})

	t.Run("DeleteInvalidates", func(t *testing.T) {
		backend := &countingStore{Store: NewMemoryStore()}
		store := NewCachingStore(backend)

		require.NoError(t, store.Put(ctx, "k", []byte("v")))
		require.NoError(t, store.Delete(ctx, "k"))
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ConcurrentGets", func(t *testing.T) {
		backend := &countingStore{Store: NewMemoryStore()}
		require.NoError(t, backend.Store.Put(ctx, "k", []byte("v")))
		store := NewCachingStore(backend)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := store.Get(ctx, "k")
				assert.NoError(t, err)
				assert.Equal(t, []byte("v"), got)
			}()
		}
		wg.Wait()
	})
}

func TestThrottledStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Unlimited", func(t *testing.T) {
		store := NewThrottledStore(NewMemoryStore(), 0)
		require.NoError(t, store.Put(ctx, "k", []byte("v")))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("PassThrough", func(t *testing.T) {
		store := NewThrottledStore(NewMemoryStore(), 1<<20)
		require.NoError(t, store.Put(ctx, "k", []byte("payload")))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)
		require.NoError(t, store.Delete(ctx, "k"))
		_, err = store.Get(ctx, "k")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
