// SPDX-License-Identifier: MIT

//go:build !linux

package matrix

// physicalMemory is unknown off Linux; only the runtime limit applies.
func physicalMemory() uint64 { return 0 }
