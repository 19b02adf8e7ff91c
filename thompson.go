// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Thompson is an explicit-cursor single-producer single-consumer queue.
//
// Lamport ring buffer observing the single writer principle: the producer is
// the only writer of tail, the consumer the only writer of head. Each side
// publishes its cursor with a release store and reads the peer's cursor with
// an acquire load on every operation. Slot contents are plain memory whose
// visibility follows from the cursor relationship.
//
// Memory: (capacity << shift) slots plus one cache line of pad slots at each
// end.
type Thompson[T any] struct {
	_      pad
	tail   atomix.Uint64 // Producer writes here
	_      pad
	head   atomix.Uint64 // Consumer writes here
	_      pad
	buffer []T
	ring
	_ pad
}

// NewThompson creates a new explicit-cursor queue.
// Capacity rounds up to the next power of 2.
// Panics with an error wrapping ErrInvalidArgument if capacity < 1.
func NewThompson[T any](capacity int) *Thompson[T] {
	return newThompson[T](capacity, 0)
}

func newThompson[T any](capacity, sparseShift int) *Thompson[T] {
	r := newRing(capacity, sparseShift, padSlotsFor[T]())
	return &Thompson[T]{
		buffer: make([]T, r.n),
		ring:   r,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *Thompson[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	// head <= tail-capacity, kept in unsigned arithmetic
	if tail-q.head.LoadAcquire() >= q.capacity() {
		return ErrWouldBlock
	}

	q.buffer[q.index(tail)] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Thompson[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.tail.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	i := q.index(head)
	elem := q.buffer[i]
	var zero T
	q.buffer[i] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Peek returns the oldest element without removing it (consumer only).
func (q *Thompson[T]) Peek() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.tail.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.buffer[q.index(head)], nil
}

// Len returns a best-effort element count.
func (q *Thompson[T]) Len() int {
	return occupancy(&q.head, &q.tail, q.capacity())
}

// Cap returns the queue capacity.
func (q *Thompson[T]) Cap() int {
	return int(q.capacity())
}
