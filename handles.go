// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Split returns the producer and consumer views of q.
//
// The views wrap q so neither can be type-asserted back to the other side's
// operations. Give the producer view to exactly one goroutine and the
// consumer view to exactly one goroutine; that is the whole concurrency
// contract of the package.
//
// Example:
//
//	p, c := spsc.Split[Event](spsc.NewYak[Event](1024))
//	go produce(p)
//	go consume(c)
func Split[T any](q Queue[T]) (Producer[T], Consumer[T]) {
	return producerEnd[T]{q: q}, consumerEnd[T]{q: q}
}

type producerEnd[T any] struct {
	q Queue[T]
}

func (p producerEnd[T]) Enqueue(elem *T) error { return p.q.Enqueue(elem) }
func (p producerEnd[T]) Cap() int              { return p.q.Cap() }

type consumerEnd[T any] struct {
	q Queue[T]
}

func (c consumerEnd[T]) Dequeue() (T, error) { return c.q.Dequeue() }
func (c consumerEnd[T]) Peek() (T, error)    { return c.q.Peek() }
func (c consumerEnd[T]) Cap() int            { return c.q.Cap() }
