package scheduler

import (
	"context"
	"sync"
	"time"
)

// LockTable serializes reservation attempts per (event, date) within
// one process. The storage transaction plus the unique booking index
// remain the cross-instance guarantee; this table just keeps local
// contenders from burning transactions against each other.
type lockEntry struct {
	ch   chan struct{} // holds one token when the lock is free
	refs int
}

type LockTable struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

// NewLockTable creates an empty lock table.
func NewLockTable() *LockTable {
	return &LockTable{entries: make(map[string]*lockEntry)}
}

func (t *LockTable) get(key string) *lockEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[key]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		t.entries[key] = e
	}
	e.refs++
	return e
}

func (t *LockTable) put(key string, e *lockEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(t.entries, key)
	}
}

// Acquire takes the lock for key, waiting at most timeout. It returns
// false when the lock could not be taken in time or the context was
// cancelled; the caller must then fail the attempt as retryable rather
// than block the request.
func (t *LockTable) Acquire(ctx context.Context, key string, timeout time.Duration) bool {
	e := t.get(key)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-e.ch:
		return true
	case <-timer.C:
	case <-ctx.Done():
	}
	t.put(key, e)
	return false
}

// Release returns the lock for key. Must be called exactly once per
// successful Acquire.
func (t *LockTable) Release(key string) {
	t.mu.Lock()
	e, ok := t.entries[key]
	t.mu.Unlock()
	if !ok {
		return
	}
	e.ch <- struct{}{}
	t.put(key, e)
}
