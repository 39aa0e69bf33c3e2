// SPDX-License-Identifier: MIT

package matrix

// SetAvailableMemoryForTest replaces the memory probe and returns a restore func.
func SetAvailableMemoryForTest(fn func() uint64) (restore func()) {
	prev := availableMemory
	availableMemory = fn

	return func() { availableMemory = prev }
}

// MakeCellsForTest exposes makeCells.
var MakeCellsForTest = makeCells
