// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "math/bits"

// MaxSparseShift is the largest accepted sparse shift.
// A shift of s places consecutive logical slots 1<<s physical slots apart.
const MaxSparseShift = 8

// ring maps monotonically increasing cursors onto physical buffer slots.
//
// Physical layout for capacity n, shift s and p pad slots:
//
//	[p pad slots][n<<s stride slots][p pad slots]
//
// Logical position i lives at base + (i&mask)<<shift.
type ring struct {
	mask  uint64
	shift uint64
	base  uint64
	n     int // physical slot count including pads
}

// newRing validates the requested geometry and builds it.
// Panics with an error wrapping ErrInvalidArgument on bad input.
func newRing(capacity, sparseShift, padSlots int) ring {
	if capacity < 1 {
		panic(invalidArgument("capacity must be >= 1, got %d", capacity))
	}
	if sparseShift < 0 || sparseShift > MaxSparseShift {
		panic(invalidArgument("sparse shift must be in [0, %d], got %d", MaxSparseShift, sparseShift))
	}

	c := roundToPow2(capacity)
	if c <= 0 || bits.Len(uint(c))+sparseShift >= bits.UintSize-1 {
		panic(invalidArgument("capacity %d with sparse shift %d overflows", capacity, sparseShift))
	}

	return ring{
		mask:  uint64(c - 1),
		shift: uint64(sparseShift),
		base:  uint64(padSlots),
		n:     c<<sparseShift + 2*padSlots,
	}
}

// index returns the physical slot for a logical cursor.
func (r *ring) index(cursor uint64) uint64 {
	return r.base + (cursor&r.mask)<<r.shift
}

// capacity returns the logical capacity.
func (r *ring) capacity() uint64 {
	return r.mask + 1
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
