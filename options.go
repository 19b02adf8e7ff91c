// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "strings"

// Algorithm selects how a queue publishes elements across goroutines.
type Algorithm uint8

const (
	// CachedCursor keeps a private snapshot of the peer cursor and refreshes
	// it only on apparent full/empty (Yak, YakSparse).
	CachedCursor Algorithm = iota
	// ExplicitCursor reads the peer cursor on every operation (Thompson).
	ExplicitCursor
	// Sentinel publishes through the slot's occupancy state (FF, FFPtr).
	Sentinel
)

var algorithmNames = [...]string{
	CachedCursor:   "yak",
	ExplicitCursor: "thompson",
	Sentinel:       "ff",
}

// String returns the short algorithm name accepted by [ParseAlgorithm].
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

// ParseAlgorithm maps a short name ("yak", "thompson", "ff"),
// case-insensitively, to an Algorithm.
// Returns an error wrapping ErrInvalidArgument for unknown names.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(name, n) {
			return Algorithm(a), nil
		}
	}
	return 0, invalidArgument("unknown algorithm %q", name)
}

// Options configures queue creation and algorithm selection.
type Options struct {
	algorithm Algorithm

	// Layout hints
	sparseShift int // log2 of the slot stride

	// Capacity (rounds up to next power of 2)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Cached-cursor queue (default)
//	q := spsc.Build[Event](spsc.New(1024))
//
//	// Sentinel-publication queue with slots 4 apart
//	q := spsc.BuildFF[Event](spsc.New(1024).Sentinel().Sparse(2))
//
//	// Zero-copy pointer queue
//	q := spsc.New(4096).Sentinel().BuildPtr()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2.
// For example, capacity=4 results in actual capacity=4, capacity=1000 results
// in actual capacity=1024.
//
// Panics with an error wrapping ErrInvalidArgument if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic(invalidArgument("capacity must be >= 1, got %d", capacity))
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Sentinel selects slot-published queues (FF).
func (b *Builder) Sentinel() *Builder {
	b.opts.algorithm = Sentinel
	return b
}

// ExplicitCursor selects explicit-cursor queues (Thompson).
func (b *Builder) ExplicitCursor() *Builder {
	b.opts.algorithm = ExplicitCursor
	return b
}

// CachedCursor selects cached-cursor queues (Yak). This is the default.
func (b *Builder) CachedCursor() *Builder {
	b.opts.algorithm = CachedCursor
	return b
}

// Algorithm selects the algorithm by value, e.g. one returned by
// [ParseAlgorithm].
func (b *Builder) Algorithm(a Algorithm) *Builder {
	if int(a) >= len(algorithmNames) {
		panic(invalidArgument("unknown algorithm %d", a))
	}
	b.opts.algorithm = a
	return b
}

// Sparse spaces logical slots 1<<shift physical slots apart.
//
// Trade-off: 1<<shift times the buffer memory, fewer cache lines shared
// between the producer's and the consumer's current slots.
//
// Panics with an error wrapping ErrInvalidArgument if shift is outside
// [0, MaxSparseShift].
func (b *Builder) Sparse(shift int) *Builder {
	if shift < 0 || shift > MaxSparseShift {
		panic(invalidArgument("sparse shift must be in [0, %d], got %d", MaxSparseShift, shift))
	}
	b.opts.sparseShift = shift
	return b
}

// Build creates a Queue[T] with the selected algorithm.
//
// Algorithm selection:
//
//	Sentinel        → FF
//	ExplicitCursor  → Thompson
//	CachedCursor    → Yak (YakSparse if Sparse(shift > 0))
func Build[T any](b *Builder) Queue[T] {
	switch b.opts.algorithm {
	case Sentinel:
		return newFF[T](b.opts.capacity, b.opts.sparseShift)
	case ExplicitCursor:
		return newThompson[T](b.opts.capacity, b.opts.sparseShift)
	default:
		return BuildYak[T](b)
	}
}

// BuildFF creates an FF queue with compile-time type safety.
// Panics if builder is not configured with Sentinel().
func BuildFF[T any](b *Builder) *FF[T] {
	if b.opts.algorithm != Sentinel {
		panic("spsc: BuildFF requires Sentinel()")
	}
	return newFF[T](b.opts.capacity, b.opts.sparseShift)
}

// BuildThompson creates a Thompson queue with compile-time type safety.
// Panics if builder is not configured with ExplicitCursor().
func BuildThompson[T any](b *Builder) *Thompson[T] {
	if b.opts.algorithm != ExplicitCursor {
		panic("spsc: BuildThompson requires ExplicitCursor()")
	}
	return newThompson[T](b.opts.capacity, b.opts.sparseShift)
}

// BuildYak creates a cached-cursor queue: *Yak[T] for a dense layout,
// *YakSparse[T] when Sparse was given a non-zero shift.
// Panics if builder is not configured with CachedCursor().
func BuildYak[T any](b *Builder) Queue[T] {
	if b.opts.algorithm != CachedCursor {
		panic("spsc: BuildYak requires CachedCursor()")
	}
	if b.opts.sparseShift > 0 {
		return NewYakSparse[T](b.opts.capacity, b.opts.sparseShift)
	}
	return NewYak[T](b.opts.capacity)
}

// BuildPtr creates a queue for unsafe.Pointer values.
//
// Pointer queues always publish through the slot: nil is a natural absent
// marker. Panics if builder is not configured with Sentinel().
func (b *Builder) BuildPtr() *FFPtr {
	if b.opts.algorithm != Sentinel {
		panic("spsc: BuildPtr requires Sentinel()")
	}
	return newFFPtr(b.opts.capacity, b.opts.sparseShift)
}
