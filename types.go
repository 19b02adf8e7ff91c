// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "unsafe"

// Queue is the combined producer-consumer interface for an SPSC FIFO queue.
//
// Queue provides non-blocking Enqueue, Dequeue and Peek operations. They
// return ErrWouldBlock when they cannot proceed (queue full or empty).
//
// Exactly one goroutine may act as the producer and exactly one as the
// consumer for the lifetime of the queue. Use [Split] to hand each side a
// view that exposes only its own operations.
//
// Example:
//
//	q := spsc.NewYak[int](1024)
//
//	// Enqueue
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full queue
//	}
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Len returns a best-effort snapshot of the number of queued elements,
	// always within [0, Cap()]. It is exact only while both sides are idle.
	Len() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full, or
	// ErrInvalidArgument if elem is nil.
	Enqueue(elem *T) error

	// Cap returns the effective capacity (a power of two).
	Cap() int
}

// Consumer is the interface for dequeueing elements.
//
// Elements are returned by value. Dequeue clears the slot so the queue does
// not retain references to consumed objects.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the oldest element without removing it.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Peek() (T, error)

	// Cap returns the effective capacity (a power of two).
	Cap() int
}

// QueuePtr is the combined interface for unsafe.Pointer queues.
//
// QueuePtr passes pointers directly without copying. The producer transfers
// ownership to the consumer: after enqueueing, the producer should not
// access the object. A nil pointer is the absent marker and is rejected.
type QueuePtr interface {
	// Enqueue adds a non-nil pointer.
	// Returns ErrWouldBlock if the queue is full, ErrInvalidArgument for nil.
	Enqueue(elem unsafe.Pointer) error

	// Dequeue removes and returns the oldest pointer.
	// Returns (nil, ErrWouldBlock) if the queue is empty.
	Dequeue() (unsafe.Pointer, error)

	// Peek returns the oldest pointer without removing it.
	Peek() (unsafe.Pointer, error)

	Cap() int
	Len() int
}
