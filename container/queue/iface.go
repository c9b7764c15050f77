package queue

// IQueue is the set of mutations a sequential queue supports.
// Dequeue removes from the tail, RemoveFirst from the head.
type IQueue[T any] interface {
	Enqueue(v T)
	EnqueueMany(vs ...T)
	Dequeue()
	RemoveFirst() error
	RemoveAt(idx uint) error
	Destroy()
}

var _ IQueue[int32] = (*SeqQueue[int32])(nil)
