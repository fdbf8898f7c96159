package checks

import (
	"golang.org/x/exp/constraints"
)

// Windows 11 minimums.
const (
	MinActiveProcessors = 2
	MinProcessorCount   = 2
	MinClockMHz         = 1000
	MinFastProcessors   = 2

	// MemoryThresholdKB is ~4 GB in the units GetPhysicallyInstalledSystemMemory
	// reports. The reading must be strictly greater.
	MemoryThresholdKB = 4096000

	MinFreeDiskGiB = 64

	MinDesktopWidth  = 1366
	MinDesktopHeight = 768

	RequiredTPMVersion = 2

	GraphicsRuntime   = "d3d12.dll"
	DriverModelMarker = "Driver Model: WDDM 2"
)

func atLeast[T constraints.Integer](v, floor T) bool {
	return v >= floor
}

// countAtLeast returns how many values are >= floor.
func countAtLeast[T constraints.Integer](values []T, floor T) int {
	n := 0
	for _, v := range values {
		if atLeast(v, floor) {
			n++
		}
	}
	return n
}

// bytesToGiB converts to whole binary gigabytes, truncating.
func bytesToGiB(b uint64) uint64 {
	return b / 1024 / 1024 / 1024
}
