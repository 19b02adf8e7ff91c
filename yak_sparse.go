// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// YakSparse is a cached-cursor SPSC queue with a sparse buffer layout.
//
// Logical slot i lives at physical slot (i&mask)<<shift, so consecutive
// elements are 1<<shift slots apart. When elements are much smaller than a
// cache line this stops the producer's current slot and the consumer's
// current slot from sharing a line, at the price of 1<<shift times the
// buffer memory.
type YakSparse[T any] struct {
	_          pad
	head       atomix.Uint64
	_          pad
	cachedTail uint64
	_          pad
	tail       atomix.Uint64
	_          pad
	cachedHead uint64
	_          pad
	buffer     []T
	ring
	_ pad
}

// NewYakSparse creates a cached-cursor queue with the given sparse shift.
// Capacity rounds up to the next power of 2; shift must be in
// [0, MaxSparseShift]. Panics with an error wrapping ErrInvalidArgument
// otherwise.
func NewYakSparse[T any](capacity, shift int) *YakSparse[T] {
	r := newRing(capacity, shift, padSlotsFor[T]())
	return &YakSparse[T]{
		buffer: make([]T, r.n),
		ring:   r,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *YakSparse[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrWouldBlock
		}
	}

	q.buffer[q.index(tail)] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *YakSparse[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	i := q.index(head)
	elem := q.buffer[i]
	var zero T
	q.buffer[i] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Peek returns the oldest element without removing it (consumer only).
func (q *YakSparse[T]) Peek() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	return q.buffer[q.index(head)], nil
}

// Len returns a best-effort element count.
func (q *YakSparse[T]) Len() int {
	return occupancy(&q.head, &q.tail, q.capacity())
}

// Cap returns the queue capacity.
func (q *YakSparse[T]) Cap() int {
	return int(q.capacity())
}

// Shift returns the sparse shift the queue was built with.
func (q *YakSparse[T]) Shift() int {
	return int(q.shift)
}
