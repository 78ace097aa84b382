package ioq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfswalk/bfscore/bfserr"
)

func TestEntryPoolAcquireRelease(t *testing.T) {
	p := newEntryPool(2)
	assert.Equal(t, 2, p.available())

	e1, err := p.acquire()
	require.NoError(t, err)
	assert.Equal(t, 1, p.available())

	e2, err := p.acquire()
	require.NoError(t, err)
	assert.Equal(t, 0, p.available())

	_, err = p.acquire()
	assert.ErrorIs(t, err, bfserr.ErrQueueFull)

	p.release(e1)
	assert.Equal(t, 1, p.available())
	p.release(e2)
	assert.Equal(t, 2, p.available())
}

func TestEntryPoolReleaseResetsEntry(t *testing.T) {
	p := newEntryPool(1)
	e, err := p.acquire()
	require.NoError(t, err)

	e.Op = OpClose
	e.Ret = -1
	e.Err = bfserr.ErrCancelled
	e.Ptr = "x"

	p.release(e)

	e2, err := p.acquire()
	require.NoError(t, err)
	assert.Same(t, e, e2)
	assert.Equal(t, OpClose, e2.Op) // zero value of Op
	assert.Equal(t, 0, e2.Ret)
	assert.NoError(t, e2.Err)
	assert.Nil(t, e2.Ptr)
}

func TestEntryPoolAcquireBlockingRespectsContext(t *testing.T) {
	p := newEntryPool(1)
	_, err := p.acquire()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.acquireBlocking(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
