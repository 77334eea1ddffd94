package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsAuthenticated(t *testing.T) {
	assert.False(t, Session{}.IsAuthenticated())
	assert.False(t, Session{Token: "orphan-token"}.IsAuthenticated())
	assert.True(t, Session{User: "alice"}.IsAuthenticated())
	assert.True(t, Session{User: "alice", Token: "tok"}.IsAuthenticated())
}

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr error
	}{
		{name: "valid", creds: Credentials{User: "alice", Password: "secret"}},
		{name: "missing user", creds: Credentials{Password: "secret"}, wantErr: ErrEmptyUser},
		{name: "missing password", creds: Credentials{User: "alice"}, wantErr: ErrEmptyPassword},
		{name: "both missing", creds: Credentials{}, wantErr: ErrEmptyUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCacheEntry_Fresh(t *testing.T) {
	now := time.Now()
	entry := CacheEntry{FetchedAt: now.Add(-time.Second)}

	// Zero TTL means always stale: every navigation re-resolves.
	assert.False(t, entry.Fresh(0, now))
	assert.False(t, entry.Fresh(-time.Minute, now))

	assert.True(t, entry.Fresh(time.Minute, now))
	assert.False(t, entry.Fresh(time.Millisecond, now))
}

func TestPlaceholderPosts_Stable(t *testing.T) {
	a := PlaceholderPosts()
	b := PlaceholderPosts()

	assert.Equal(t, a, b)
	assert.Len(t, a, 1)
	assert.Equal(t, int64(0), a[0].ID)
}
