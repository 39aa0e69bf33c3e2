// SPDX-License-Identifier: MIT

//go:build linux

package matrix

import "golang.org/x/sys/unix"

// physicalMemory reports total RAM via sysinfo(2), or 0 on failure.
func physicalMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}

	return uint64(info.Totalram) * uint64(info.Unit)
}
