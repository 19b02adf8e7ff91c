// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// FF is a single-producer single-consumer queue that publishes through the
// slot itself (FastForward style).
//
// Each slot carries an occupancy flag. The producer checks the flag of the
// slot at its cursor with acquire ordering, writes the element and sets the
// flag with release ordering. The consumer mirrors this and clears the flag.
// No cursor is read across cores on the hot path; head and tail are shared
// only for Len.
//
// Because occupancy is a separate flag, every value of T (including its zero
// value) is a valid element.
//
// Memory: (capacity << shift) slots plus one cache line of pad slots at each
// end, each slot sizeof(T) + flag.
type FF[T any] struct {
	_      pad
	tail   atomix.Uint64 // Producer cursor
	_      pad
	head   atomix.Uint64 // Consumer cursor
	_      pad
	buffer []ffSlot[T]
	ring
	_ pad
}

type ffSlot[T any] struct {
	full atomix.Bool
	data T
}

// NewFF creates a new sentinel-publication queue.
// Capacity rounds up to the next power of 2.
// Panics with an error wrapping ErrInvalidArgument if capacity < 1.
func NewFF[T any](capacity int) *FF[T] {
	return newFF[T](capacity, 0)
}

func newFF[T any](capacity, sparseShift int) *FF[T] {
	r := newRing(capacity, sparseShift, padSlotsFor[ffSlot[T]]())
	return &FF[T]{
		buffer: make([]ffSlot[T], r.n),
		ring:   r,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *FF[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[q.index(tail)]
	if slot.full.LoadAcquire() {
		return ErrWouldBlock
	}

	slot.data = *elem
	slot.full.StoreRelease(true)
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *FF[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	slot := &q.buffer[q.index(head)]
	if !slot.full.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.full.StoreRelease(false)
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Peek returns the oldest element without removing it (consumer only).
func (q *FF[T]) Peek() (T, error) {
	slot := &q.buffer[q.index(q.head.LoadRelaxed())]
	if !slot.full.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}
	return slot.data, nil
}

// Len returns a best-effort element count.
func (q *FF[T]) Len() int {
	return occupancy(&q.head, &q.tail, q.capacity())
}

// Cap returns the queue capacity.
func (q *FF[T]) Cap() int {
	return int(q.capacity())
}

// occupancy snapshots both cursors. The consumer cursor is loaded first so
// the difference cannot go negative; it may overshoot while both sides run,
// hence the clamp.
func occupancy(head, tail *atomix.Uint64, capacity uint64) int {
	h := head.LoadAcquire()
	t := tail.LoadAcquire()
	if t <= h {
		return 0
	}
	if n := t - h; n < capacity {
		return int(n)
	}
	return int(capacity)
}
