//go:build linux

package util

import "golang.org/x/sys/unix"

// PhysicalMemoryKiB reports the total physical memory of the host.
func PhysicalMemoryKiB() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	total := uint64(info.Totalram) * uint64(info.Unit)
	return total / 1024, total > 0
}
