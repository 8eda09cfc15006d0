package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore implements Store using the local file system. Each key is a
// file under the root directory. Writes go to a temp file first and are
// published with an atomic rename, so readers never observe a partial
// value.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory,
// creating it if necessary.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Get returns the value stored under key.
func (s *LocalStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// Put writes the value under key atomically.
func (s *LocalStore) Put(_ context.Context, key string, data []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return nil
}

// Delete removes the value under key.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, key)
}
