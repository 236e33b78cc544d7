package queue

// Queue is a FIFO of pending items drained once per update.
type Queue[T any] interface {
	Enqueue(item T) error
	Size() int
	ReadAll() []T
	Clear()
}
