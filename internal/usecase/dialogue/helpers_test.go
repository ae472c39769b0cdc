package dialogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftLocks_EntryRemovedAfterLastRelease(t *testing.T) {
	l := newDraftLocks()

	m := l.lock("d-1")
	l.unlock("d-1", m)

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks)
}

func TestDraftLocks_WaiterKeepsSameMutexAcrossRelease(t *testing.T) {
	l := newDraftLocks()

	first := l.lock("d-1")

	acquired := make(chan *draftLock)
	go func() {
		acquired <- l.lock("d-1")
	}()

	// Wait until the second caller has registered as a waiter.
	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		m, ok := l.locks["d-1"]
		return ok && m.refs == 2
	}, time.Second, time.Millisecond)

	l.unlock("d-1", first)

	second := <-acquired
	// Releasing the first holder must not hand the waiter a fresh mutex,
	// or two turns for the same dialogue could run concurrently.
	assert.Same(t, first, second)

	l.unlock("d-1", second)
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks)
}

func TestDraftLocks_IndependentDialoguesDoNotBlock(t *testing.T) {
	l := newDraftLocks()

	first := l.lock("d-1")
	defer l.unlock("d-1", first)

	done := make(chan struct{})
	go func() {
		m := l.lock("d-2")
		l.unlock("d-2", m)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("locking a different dialogue must not block")
	}
}
