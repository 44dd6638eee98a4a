package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), 0))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryDelete(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is a no-op.
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestMemoryTTLExpiry(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	now := time.Now()
	kv.SetClock(func() time.Time { return now })

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), 30*time.Minute))

	_, err := kv.Get(ctx, "k")
	require.NoError(t, err, "entry should be live inside its TTL")

	now = now.Add(31 * time.Minute)
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound, "entry should expire after its TTL")
}

func TestMemoryReturnsCopies(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, kv.Set(ctx, "k", original, 0))
	original[0] = 'X'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	got[0] = 'Y'
	again, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}
