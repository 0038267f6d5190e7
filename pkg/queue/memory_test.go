package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 3, q.Size())

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, item)
	assert.Equal(t, []int{2, 3}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Empty(t, q.ReadAllMessages())
}

func TestInMemoryQueue_PushDuringDrainWaitsForNextDrain(t *testing.T) {
	q := NewInMemoryQueue[string]()
	q.Enqueue("lines")

	var handled []string
	for _, msg := range q.ReadAllMessages() {
		handled = append(handled, msg)
		q.Enqueue("level")
	}
	assert.Equal(t, []string{"lines"}, handled)
	assert.Equal(t, 1, q.Size())
	assert.Equal(t, []string{"level"}, q.ReadAllMessages())
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.Empty(t, q.ReadAllMessages())
}

func TestInMemoryQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue[int]()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Enqueue(i)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.ReadAllMessages(), 800)
}
