package queue

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/tezrry/lineup/pkg/errors"
	"github.com/tezrry/lineup/pkg/logging"
	util_math "github.com/tezrry/lineup/util/math"
)

// SeqQueue is an insertion-ordered queue backed by a growable slice.
// It is not safe for concurrent use.
type SeqQueue[T any] struct {
	items  []T
	config Config
}

// NewSeqQueue creates a queue holding a copy of items, in order.
func NewSeqQueue[T any](items []T, config ...ConfigFunc) *SeqQueue[T] {
	inst := newSeqQueue[T](len(items), config)
	inst.items = append(inst.items, items...)
	return inst
}

// NewEmptySeqQueue creates a queue with no elements.
func NewEmptySeqQueue[T any](config ...ConfigFunc) *SeqQueue[T] {
	return newSeqQueue[T](0, config)
}

func newSeqQueue[T any](n int, config []ConfigFunc) *SeqQueue[T] {
	inst := &SeqQueue[T]{}
	for _, cf := range config {
		cf(&inst.config)
	}

	if inst.config.Logger == nil {
		inst.config.Logger = logging.GetDefaultLogger()
	}

	size := util_math.CeilToPowerOfTwo(max(n, inst.config.Capacity))
	if size > 0 {
		inst.items = make([]T, 0, size)
	}
	return inst
}

// Enqueue appends v as the last element.
func (inst *SeqQueue[T]) Enqueue(v T) {
	inst.items = append(inst.items, v)
}

// EnqueueMany appends vs in order. An empty vs is a no-op.
func (inst *SeqQueue[T]) EnqueueMany(vs ...T) {
	inst.items = append(inst.items, vs...)
}

// Dequeue removes the last element. It does nothing on an empty queue.
func (inst *SeqQueue[T]) Dequeue() {
	n := len(inst.items)
	if n == 0 {
		return
	}

	var zero T
	inst.items[n-1] = zero
	inst.items = inst.items[:n-1]
}

// RemoveFirst removes the element at index 0. It fails with
// errors.ErrIndexOutOfBounds on an empty queue.
func (inst *SeqQueue[T]) RemoveFirst() error {
	return inst.remove("RemoveFirst", 0)
}

// RemoveAt removes the element at idx. Only 0 <= idx < Len() succeeds;
// idx == Len() passes the range guard and is then rejected by the removal
// itself, so every failure carries errors.ErrIndexOutOfBounds.
func (inst *SeqQueue[T]) RemoveAt(idx uint) error {
	if idx > uint(len(inst.items)) {
		return inst.reject("RemoveAt", idx)
	}

	return inst.remove("RemoveAt", idx)
}

func (inst *SeqQueue[T]) remove(op string, idx uint) error {
	n := len(inst.items)
	if idx >= uint(n) {
		return inst.reject(op, idx)
	}

	copy(inst.items[idx:], inst.items[idx+1:])
	var zero T
	inst.items[n-1] = zero
	inst.items = inst.items[:n-1]
	return nil
}

func (inst *SeqQueue[T]) reject(op string, idx uint) error {
	err := &errors.IndexError{Op: op, Index: idx, Len: len(inst.items)}
	inst.config.Logger.Debugf("queue: %v, items=%s", err, inst)
	return err
}

// Destroy removes every element. The backing array is kept for reuse.
func (inst *SeqQueue[T]) Destroy() {
	clear(inst.items)
	inst.items = inst.items[:0]
}

// Clear is an alias of Destroy.
func (inst *SeqQueue[T]) Clear() {
	inst.Destroy()
}

func (inst *SeqQueue[T]) Len() int {
	return len(inst.items)
}

func (inst *SeqQueue[T]) IsEmpty() bool {
	return len(inst.items) == 0
}

// Items returns a copy of the elements in queue order.
func (inst *SeqQueue[T]) Items() []T {
	ret := make([]T, len(inst.items))
	copy(ret, inst.items)
	return ret
}

// String formats the queue as [e0 e1 ...].
func (inst *SeqQueue[T]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('[')
	for i, v := range inst.items {
		if i > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = fmt.Fprint(buf, v)
	}
	_ = buf.WriteByte(']')
	return buf.String()
}
