package ioq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingTryPushPopFIFO(t *testing.T) {
	r := newRing(2)
	a, b := &IoqEnt{Ret: 1}, &IoqEnt{Ret: 2}

	assert.True(t, r.TryPush(a))
	assert.True(t, r.TryPush(b))
	assert.False(t, r.TryPush(&IoqEnt{})) // full

	assert.Same(t, a, r.TryPop())
	assert.Same(t, b, r.TryPop())
	assert.Nil(t, r.TryPop()) // empty
}

func TestRingPushBlocksUntilSpace(t *testing.T) {
	r := newRing(1)
	require.True(t, r.TryPush(&IoqEnt{}))

	done := make(chan error, 1)
	go func() {
		done <- r.Push(context.Background(), &IoqEnt{Ret: 9})
	}()

	select {
	case <-done:
		t.Fatal("Push returned before a slot opened")
	case <-time.After(20 * time.Millisecond):
	}

	r.TryPop()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Push did not unblock after a slot opened")
	}
}

func TestRingPopRespectsContext(t *testing.T) {
	r := newRing(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	e, err := r.Pop(ctx)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRingCloseWakesBlockedPop(t *testing.T) {
	r := newRing(1)
	done := make(chan struct{})
	go func() {
		e, err := r.Pop(context.Background())
		assert.Nil(t, e)
		assert.NoError(t, err)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	r.close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close did not wake a blocked Pop")
	}
}
