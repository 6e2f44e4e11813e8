package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id := NewID()
	data := Data{Email: "anita.rao2022b@vitstudent.ac.in", FirstName: "Anita", LastName: "Rao2", NeedsRegistration: true}
	require.NoError(t, store.Save(ctx, id, data))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Save again with the flag cleared
	data.NeedsRegistration = false
	require.NoError(t, store.Save(ctx, id, data))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.NeedsRegistration)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	// Deleting an unknown session is a no-op
	assert.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	id := NewID()
	require.NoError(t, store.Save(context.Background(), id, Data{Email: "a.b2022f@vitstudent.ac.in"}))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
