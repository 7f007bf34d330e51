//go:build !linux

package util

// PhysicalMemoryKiB reports that the host memory size is unknown.
func PhysicalMemoryKiB() (uint64, bool) {
	return 0, false
}
