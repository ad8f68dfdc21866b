package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitQueueFIFO(t *testing.T) {
	q := NewWaitQueue()
	assert.True(t, q.IsEmpty())

	q.Enqueue(1, 10)
	q.Enqueue(2, 20)
	q.Enqueue(3, 10)
	assert.False(t, q.IsEmpty())
	assert.Equal(t, 3, q.Len())

	for _, want := range []WaitlistEntry{{1, 10}, {2, 20}, {3, 10}} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestWaitQueueDequeueEmpty(t *testing.T) {
	q := NewWaitQueue()
	e, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, WaitlistEntry{}, e)
}

func TestWaitQueueSnapshotDoesNotMutate(t *testing.T) {
	q := NewWaitQueue()
	q.Enqueue(1, 1)
	q.Enqueue(2, 2)

	snap := q.Snapshot()
	assert.Equal(t, []WaitlistEntry{{1, 1}, {2, 2}}, snap)
	snap[0].UserID = 99

	assert.Equal(t, []WaitlistEntry{{1, 1}, {2, 2}}, q.Snapshot())
	assert.Equal(t, 2, q.Len())
}

func TestWaitQueueOrderSurvivesCompaction(t *testing.T) {
	q := NewWaitQueue()
	var next int64
	var want []WaitlistEntry

	// Interleave so the consumed prefix is reclaimed several times.
	for round := 0; round < 20; round++ {
		for i := 0; i < 10; i++ {
			next++
			q.Enqueue(next, next)
			want = append(want, WaitlistEntry{next, next})
		}
		for i := 0; i < 7; i++ {
			got, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, want[0], got)
			want = want[1:]
		}
		require.Equal(t, want, q.Snapshot())
	}
	assert.Equal(t, len(want), q.Len())
}
