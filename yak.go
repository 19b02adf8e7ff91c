// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Yak is a cached-cursor single-producer single-consumer queue.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's head, and vice versa, so the
// cross-core cursor is read only when the cached value suggests the queue
// is full (producer) or empty (consumer).
//
// Memory: O(capacity) with one cache line of pad slots at each end
type Yak[T any] struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []T
	ring
	_ pad
}

// NewYak creates a new cached-cursor queue with a dense buffer.
// Capacity rounds up to the next power of 2.
// Panics with an error wrapping ErrInvalidArgument if capacity < 1.
func NewYak[T any](capacity int) *Yak[T] {
	r := newRing(capacity, 0, padSlotsFor[T]())
	return &Yak[T]{
		buffer: make([]T, r.n),
		ring:   r,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *Yak[T]) Enqueue(elem *T) error {
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

	q.buffer[q.base+tail&q.mask] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Yak[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	i := q.base + head&q.mask
	elem := q.buffer[i]
	var zero T
	q.buffer[i] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Peek returns the oldest element without removing it (consumer only).
func (q *Yak[T]) Peek() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	return q.buffer[q.base+head&q.mask], nil
}

// Len returns a best-effort element count.
func (q *Yak[T]) Len() int {
	return occupancy(&q.head, &q.tail, q.capacity())
}

// Cap returns the queue capacity.
func (q *Yak[T]) Cap() int {
	return int(q.mask + 1)
}
