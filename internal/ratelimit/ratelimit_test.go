package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AllowsUpToLimit(t *testing.T) {
	store := NewMemoryStore(3, time.Minute)
	defer func() { require.NoError(t, store.Close()) }()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	// The limit+1-th request and everything after it is rejected.
	for i := 0; i < 5; i++ {
		allowed, err := store.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, allowed)
	}
}

func TestMemoryStore_ClientsAreIndependent(t *testing.T) {
	store := NewMemoryStore(1, time.Minute)
	defer func() { require.NoError(t, store.Close()) }()
	ctx := context.Background()

	allowed, err := store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different client has its own untouched window.
	allowed, err = store.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore(1, 30*time.Millisecond)
	defer func() { require.NoError(t, store.Close()) }()
	ctx := context.Background()

	allowed, err := store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(40 * time.Millisecond)

	allowed, err = store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed, "a fresh window should allow the client again")
}

func TestMemoryStore_CountCappedAtCeiling(t *testing.T) {
	store := NewMemoryStore(2, time.Minute)
	defer func() { require.NoError(t, store.Close()) }()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := store.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
	}

	store.mu.Lock()
	count := store.clients["1.2.3.4"].count
	store.mu.Unlock()
	assert.Equal(t, 2, count, "rejected requests must not grow the counter")
}
