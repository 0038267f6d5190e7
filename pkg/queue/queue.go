package queue

// Queue is a FIFO of messages produced during a frame and drained once per tick.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue.
	Enqueue(item T)
	// Dequeue removes and returns the item at the front of the queue.
	// The boolean is false when the queue is empty.
	Dequeue() (T, bool)
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages removes and returns every pending item in FIFO order.
	// Items enqueued while the caller processes the result are kept for the next call.
	ReadAllMessages() []T
	// ClearQueue drops every pending item.
	ClearQueue()
}
