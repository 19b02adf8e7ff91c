// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// FFPtr is a sentinel-publication SPSC queue for unsafe.Pointer values.
//
// A nil slot means empty, a non-nil slot means occupied, so nil itself can
// never be enqueued. Useful for zero-copy pointer passing between goroutines.
type FFPtr struct {
	_      pad
	tail   atomix.Uint64
	_      pad
	head   atomix.Uint64
	_      pad
	buffer []unsafe.Pointer
	ring
	_ pad
}

// NewFFPtr creates a new sentinel-publication queue for unsafe.Pointer values.
// Capacity rounds up to the next power of 2.
func NewFFPtr(capacity int) *FFPtr {
	return newFFPtr(capacity, 0)
}

func newFFPtr(capacity, sparseShift int) *FFPtr {
	r := newRing(capacity, sparseShift, padSlotsFor[unsafe.Pointer]())
	return &FFPtr{
		buffer: make([]unsafe.Pointer, r.n),
		ring:   r,
	}
}

// Enqueue adds a non-nil pointer (producer only).
func (q *FFPtr) Enqueue(elem unsafe.Pointer) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[q.index(tail)]
	if atomic.LoadPointer(slot) != nil {
		return ErrWouldBlock
	}

	atomic.StorePointer(slot, elem)
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns a pointer (consumer only).
func (q *FFPtr) Dequeue() (unsafe.Pointer, error) {
	head := q.head.LoadRelaxed()
	slot := &q.buffer[q.index(head)]
	elem := atomic.LoadPointer(slot)
	if elem == nil {
		return nil, ErrWouldBlock
	}

	atomic.StorePointer(slot, nil)
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Peek returns the oldest pointer without removing it (consumer only).
func (q *FFPtr) Peek() (unsafe.Pointer, error) {
	elem := atomic.LoadPointer(&q.buffer[q.index(q.head.LoadRelaxed())])
	if elem == nil {
		return nil, ErrWouldBlock
	}
	return elem, nil
}

// Len returns a best-effort element count.
func (q *FFPtr) Len() int {
	return occupancy(&q.head, &q.tail, q.capacity())
}

// Cap returns the queue capacity.
func (q *FFPtr) Cap() int {
	return int(q.capacity())
}
