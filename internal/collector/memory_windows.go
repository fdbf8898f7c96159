//go:build windows

package collector

import (
	"unsafe"
)

// InstalledMemoryKB returns the physically installed RAM in kilobytes as
// reported by the SMBIOS tables.
func (h *Host) InstalledMemoryKB() (uint64, error) {
	var totalKB uint64

	ret, _, callErr := procGetPhysicallyInstalledSystemMemory.Call(uintptr(unsafe.Pointer(&totalKB)))
	if ret == 0 {
		return 0, &CallError{Proc: "GetPhysicallyInstalledSystemMemory", Code: lastError(callErr)}
	}

	return totalKB, nil
}
