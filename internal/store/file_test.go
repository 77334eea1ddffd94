package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "user", "alice"))
	require.NoError(t, s.Set(ctx, "token", "tok-1"))

	got, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	require.NoError(t, s.Set(ctx, "token", "tok-2"))
	got, err = s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)

	require.NoError(t, s.Delete(ctx, "user"))
	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "user"))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", "alice"))
	require.NoError(t, first.Set(ctx, "token", "tok"))
	require.NoError(t, first.Close())

	second, err := NewFileStore(path)
	require.NoError(t, err)
	defer second.Close()

	user, err := second.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	token, err := second.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(context.Background(), "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	ctx := context.Background()

	_, err := s.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "user", "bob"))
	got, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	require.NoError(t, s.Delete(ctx, "user"))
	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
