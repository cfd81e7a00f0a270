package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTableAcquireRelease(t *testing.T) {
	lt := NewLockTable()
	ctx := context.Background()

	require.True(t, lt.Acquire(ctx, "e1|2026-03-02", time.Second))
	lt.Release("e1|2026-03-02")
	require.True(t, lt.Acquire(ctx, "e1|2026-03-02", time.Second))
	lt.Release("e1|2026-03-02")
}

func TestLockTableTimeout(t *testing.T) {
	lt := NewLockTable()
	ctx := context.Background()

	require.True(t, lt.Acquire(ctx, "k", time.Second))
	assert.False(t, lt.Acquire(ctx, "k", 20*time.Millisecond))
	lt.Release("k")
	assert.True(t, lt.Acquire(ctx, "k", time.Second))
	lt.Release("k")
}

func TestLockTableIndependentKeys(t *testing.T) {
	lt := NewLockTable()
	ctx := context.Background()

	require.True(t, lt.Acquire(ctx, "e1|d", time.Second))
	assert.True(t, lt.Acquire(ctx, "e2|d", 20*time.Millisecond))
	lt.Release("e1|d")
	lt.Release("e2|d")
}

func TestLockTableContextCancel(t *testing.T) {
	lt := NewLockTable()
	require.True(t, lt.Acquire(context.Background(), "k", time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, lt.Acquire(ctx, "k", time.Minute))
	lt.Release("k")
}

func TestLockTableMutualExclusion(t *testing.T) {
	lt := NewLockTable()
	ctx := context.Background()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !lt.Acquire(ctx, "k", 5*time.Second) {
				return
			}
			defer lt.Release("k")
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, counter)
}

func TestLockTableEntriesReclaimed(t *testing.T) {
	lt := NewLockTable()
	ctx := context.Background()

	require.True(t, lt.Acquire(ctx, "k", time.Second))
	lt.Release("k")

	lt.mu.Lock()
	defer lt.mu.Unlock()
	assert.Empty(t, lt.entries, "released locks must not leak table entries")
}
