// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"runtime/debug"
)

// availableMemory returns the byte ceiling for a single allocation, or 0 when
// nothing is known. It is the smaller of the runtime soft memory limit (when one
// is configured) and the host's physical memory.
//
// Variable for tests.
var availableMemory = func() uint64 {
	var ceiling uint64

	// SetMemoryLimit(-1) reads the current limit without changing it.
	if lim := debug.SetMemoryLimit(-1); lim > 0 && lim < math.MaxInt64 {
		ceiling = uint64(lim)
	}
	if phys := physicalMemory(); phys > 0 && (ceiling == 0 || phys < ceiling) {
		ceiling = phys
	}

	return ceiling
}
