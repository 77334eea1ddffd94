package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore is the default [SessionStore]: a JSON snapshot on the local
// filesystem. Every mutation rewrites the snapshot before returning, so
// the persisted state is never behind the in-memory state.
//
// Values are stored as plain text. That exposure is a documented property
// of the demo, not an oversight.
type fileStore struct {
	path string

	mu   sync.RWMutex
	data map[string]string
}

// NewFileStore constructs a file-backed [SessionStore] at path, loading
// any existing snapshot. A missing file is not an error, it is the
// normal state of a fresh install.
func NewFileStore(path string) (SessionStore, error) {
	s := &fileStore{
		path: path,
		data: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read session snapshot: %v", ErrStoreUnavailable, err)
	}

	if err = json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("decode session snapshot: %w", err)
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

// snapshot writes the current state to a temp file and renames it into
// place, so a crash mid-write never leaves a truncated snapshot.
// Caller must hold the write lock.
func (s *fileStore) snapshot() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: create snapshot dir: %v", ErrStoreUnavailable, err)
	}
	if err = os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: write session snapshot: %v", ErrStoreUnavailable, err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace session snapshot: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.snapshot()
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.snapshot()
}

func (s *fileStore) Close() error {
	return nil
}
