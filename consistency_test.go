// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"unsafe"

	"code.hybscloud.com/spsc"
	"github.com/eapache/queue"
)

// =============================================================================
// Cross-Variant Consistency Tests
//
// These tests verify that all variants (FF, FFPtr, Thompson, Yak, YakSparse)
// behave identically for the same operation sequence, so they are
// interchangeable at the semantic level.
// =============================================================================

// queueOps adapts every variant to a common int interface.
type queueOps struct {
	name    string
	cap     func() int
	len     func() int
	enqueue func(int) error
	dequeue func() (int, error)
	peek    func() (int, error)
}

func genericOps(name string, q spsc.Queue[int]) queueOps {
	return queueOps{
		name:    name,
		cap:     q.Cap,
		len:     q.Len,
		enqueue: func(v int) error { return q.Enqueue(&v) },
		dequeue: q.Dequeue,
		peek:    q.Peek,
	}
}

func ptrOps(capacity int) queueOps {
	q := spsc.NewFFPtr(capacity)
	deref := func(p unsafe.Pointer, err error) (int, error) {
		if err != nil {
			return 0, err
		}
		return *(*int)(p), nil
	}
	return queueOps{
		name: "FFPtr",
		cap:  q.Cap,
		len:  q.Len,
		enqueue: func(v int) error {
			return q.Enqueue(unsafe.Pointer(&v))
		},
		dequeue: func() (int, error) { return deref(q.Dequeue()) },
		peek:    func() (int, error) { return deref(q.Peek()) },
	}
}

func allOps(capacity int) []queueOps {
	var ops []queueOps
	for _, f := range factories[int]() {
		ops = append(ops, genericOps(f.name, f.build(capacity)))
	}
	return append(ops, ptrOps(capacity))
}

// TestConsistency executes the same operation sequence on all variants.
func TestConsistency(t *testing.T) {
	const capacity = 8

	for q := range slices.Values(allOps(capacity)) {
		t.Run(q.name, func(t *testing.T) {
			// Test 1: Capacity is correct
			if got := q.cap(); got != capacity {
				t.Errorf("Cap: got %d, want %d", got, capacity)
			}

			// Test 2: Empty dequeue returns ErrWouldBlock
			if _, err := q.dequeue(); !errors.Is(err, spsc.ErrWouldBlock) {
				t.Errorf("Dequeue on empty: got %v, want ErrWouldBlock", err)
			}

			// Test 3: Fill to capacity
			for i := range capacity {
				if err := q.enqueue(i + 100); err != nil {
					t.Fatalf("Enqueue(%d): %v", i, err)
				}
			}

			// Test 4: Full enqueue returns ErrWouldBlock
			if err := q.enqueue(999); !errors.Is(err, spsc.ErrWouldBlock) {
				t.Errorf("Enqueue on full: got %v, want ErrWouldBlock", err)
			}

			// Test 5: Drain in FIFO order
			for i := range capacity {
				val, err := q.dequeue()
				if err != nil {
					t.Fatalf("Dequeue(%d): %v", i, err)
				}
				if expected := i + 100; val != expected {
					t.Errorf("Dequeue(%d): got %d, want %d", i, val, expected)
				}
			}

			// Test 6: Empty after drain
			if _, err := q.dequeue(); !errors.Is(err, spsc.ErrWouldBlock) {
				t.Errorf("Dequeue after drain: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestInterleavedConsistency tests balanced enqueue/dequeue rounds that wrap
// the ring many times.
func TestInterleavedConsistency(t *testing.T) {
	const capacity = 8

	for _, q := range allOps(capacity) {
		t.Run(q.name, func(t *testing.T) {
			var nextEnq, nextDeq int
			for round := range 1000 {
				for i := range 4 {
					if err := q.enqueue(nextEnq); err != nil {
						t.Fatalf("round %d: Enqueue(%d): %v", round, i, err)
					}
					nextEnq++
				}
				for i := range 4 {
					val, err := q.dequeue()
					if err != nil {
						t.Fatalf("round %d: Dequeue(%d): %v", round, i, err)
					}
					if val != nextDeq {
						t.Fatalf("round %d: got %d, want %d", round, val, nextDeq)
					}
					nextDeq++
				}
			}

			if nextDeq != nextEnq {
				t.Errorf("items lost: enqueued %d, dequeued %d", nextEnq, nextDeq)
			}
			if l := q.len(); l != 0 {
				t.Errorf("Len after balanced rounds: got %d, want 0", l)
			}
		})
	}
}

// =============================================================================
// Reference Model
// =============================================================================

// TestReferenceModel drives every variant with a random single-goroutine
// operation trace and compares each result against an unbounded ring deque
// limited to the same capacity.
func TestReferenceModel(t *testing.T) {
	for _, capacity := range []int{1, 2, 4, 16} {
		for _, q := range allOps(capacity) {
			t.Run(q.name, func(t *testing.T) {
				model := queue.New()
				rng := rand.New(rand.NewPCG(uint64(capacity), 7))
				next := 0

				for step := range 20_000 {
					switch rng.IntN(3) {
					case 0:
						err := q.enqueue(next)
						if model.Length() < capacity {
							if err != nil {
								t.Fatalf("step %d: Enqueue(%d): %v with model len %d", step, next, err, model.Length())
							}
							model.Add(next)
						} else if !errors.Is(err, spsc.ErrWouldBlock) {
							t.Fatalf("step %d: Enqueue on full: got %v, want ErrWouldBlock", step, err)
						}
						next++
					case 1:
						v, err := q.dequeue()
						if model.Length() == 0 {
							if !errors.Is(err, spsc.ErrWouldBlock) {
								t.Fatalf("step %d: Dequeue on empty: got (%d, %v)", step, v, err)
							}
							continue
						}
						want := model.Remove().(int)
						if err != nil || v != want {
							t.Fatalf("step %d: Dequeue: got (%d, %v), want %d", step, v, err, want)
						}
					case 2:
						v, err := q.peek()
						if model.Length() == 0 {
							if !errors.Is(err, spsc.ErrWouldBlock) {
								t.Fatalf("step %d: Peek on empty: got (%d, %v)", step, v, err)
							}
							continue
						}
						if want := model.Peek().(int); err != nil || v != want {
							t.Fatalf("step %d: Peek: got (%d, %v), want %d", step, v, err, want)
						}
					}
					if got, want := q.len(), model.Length(); got != want {
						t.Fatalf("step %d: Len: got %d, want %d", step, got, want)
					}
				}
			})
		}
	}
}
