package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore(staticFetcher(nil), time.Minute)
	c := s.Create()

	got, err := s.Get(c.Snapshot().ID)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	s := NewStore(staticFetcher(nil), time.Minute)
	s.now = func() time.Time { return now }

	a := s.Create()
	b := s.Create()

	now = now.Add(45 * time.Second)
	_, err := s.Get(a.Snapshot().ID)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(b.Snapshot().ID)
	assert.ErrorIs(t, err, ErrNotFound)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(a.Snapshot().ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}
