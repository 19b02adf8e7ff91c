// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding unit between independently mutated fields.
//
// It is the size of [cpu.CacheLinePad] for the target architecture: 64 bytes
// on amd64, larger on platforms with wider lines or adjacent-line prefetch.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// pad is cache line padding to prevent false sharing.
type pad = cpu.CacheLinePad

// padSlotsFor returns how many S-sized slots cover one cache line.
// Buffers reserve this many unused slots at each end so the first and last
// real slots never share a line with unrelated heap memory.
func padSlotsFor[S any]() int {
	var s S
	size := int(unsafe.Sizeof(s))
	if size == 0 {
		return 1
	}
	return (CacheLineSize + size - 1) / size
}
