// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides bounded single-producer single-consumer FIFO queues.
//
// All queues are fixed-size circular buffers shared by exactly one producer
// goroutine and exactly one consumer goroutine. They differ in how an
// element becomes visible to the other side and in how much cross-core
// traffic each operation causes:
//
//   - FF:        publication through the slot (occupancy flag per slot)
//   - FFPtr:     publication through the slot (nil means empty)
//   - Thompson:  explicit cursors, peer cursor read on every operation
//   - Yak:       explicit cursors plus a private cache of the peer cursor
//   - YakSparse: Yak with slots spaced 1<<shift apart
//
// # Quick Start
//
// Direct constructors:
//
//	q := spsc.NewYak[Event](1024)
//	q := spsc.NewThompson[Event](1024)
//	q := spsc.NewFF[*Request](4096)
//	q := spsc.NewYakSparse[int64](1024, 2)
//
// Builder API:
//
//	q := spsc.Build[Event](spsc.New(1024))                         // → Yak
//	q := spsc.Build[Event](spsc.New(1024).Sparse(2))               // → YakSparse
//	q := spsc.Build[Event](spsc.New(1024).ExplicitCursor())        // → Thompson
//	q := spsc.Build[Event](spsc.New(1024).Sentinel())              // → FF
//	q := spsc.New(1024).Sentinel().BuildPtr()                      // → FFPtr
//
// Algorithms can be chosen from configuration strings:
//
//	algo, err := spsc.ParseAlgorithm(*flagAlgo) // "yak", "thompson", "ff"
//	q := spsc.Build[Event](spsc.New(*flagCap).Algorithm(algo))
//
// # Basic Usage
//
//	p, c := spsc.Split[Data](spsc.NewYak[Data](1024))
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for p.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := c.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Memory Ordering
//
// Every shared field has exactly one writer. The writer publishes with a
// release store; the reader observes with an acquire load:
//
//	FF:        slot flag   producer: LoadAcquire flag, write data, StoreRelease(true)
//	                       consumer: LoadAcquire flag, read data, StoreRelease(false)
//	Thompson:  cursors     producer: write slot, tail.StoreRelease
//	                       consumer: tail.LoadAcquire, read slot, head.StoreRelease
//	Yak:       cursors     as Thompson, but the peer cursor is re-read only
//	                       when the cached copy says full (producer) or empty
//	                       (consumer)
//
// No operation loops, locks or performs compare-and-swap.
//
// # Cache-Line Layout
//
// Hot fields (producer cursor, consumer cursor, cached cursors) are separated
// by [golang.org/x/sys/cpu.CacheLinePad] so no two independently mutated
// fields share a line. Buffers reserve one cache line of unused slots at each
// end. Sparse layouts additionally space logical slots apart so that the
// producer's and consumer's current slots land on different lines even for
// small element types.
//
// # Capacity and Length
//
// Capacity rounds up to the next power of 2:
//
//	q := spsc.NewYak[int](1)     // Actual capacity: 1
//	q := spsc.NewYak[int](3)     // Actual capacity: 4
//	q := spsc.NewYak[int](10)    // Actual capacity: 16
//	q := spsc.NewYak[int](1024)  // Actual capacity: 1024
//
// Constructors panic with an error wrapping [ErrInvalidArgument] if
// capacity < 1.
//
// Len is a best-effort snapshot within [0, Cap()], exact only while both
// sides are idle.
//
// # Error Handling
//
// Full and empty are ordinary outcomes reported as [ErrWouldBlock], sourced
// from [code.hybscloud.com/iox]:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        break
//	    }
//	    if !spsc.IsWouldBlock(err) {
//	        return err // ErrInvalidArgument: nil element
//	    }
//	    backoff.Wait()
//	}
//
// Enqueue(nil) returns [ErrInvalidArgument]: a nil pointer is the absent
// marker and can never be a payload.
//
// # Thread Safety
//
// One producer goroutine, one consumer goroutine. Violating this (e.g., two
// producers) causes undefined behavior including data corruption. The
// package does not detect misuse; [Split] expresses ownership in types.
//
// # Race Detection
//
// Queues hand off non-atomic element memory through acquire-release pairs on
// separate atomix variables, which Go's race detector cannot observe.
// Concurrent tests are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [golang.org/x/sys/cpu] for cache line padding.
package spsc
