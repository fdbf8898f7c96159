//go:build windows

package collector

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// WindowsDirectory returns the shared Windows directory (e.g. C:\Windows).
func (h *Host) WindowsDirectory() (string, error) {
	var buf [windows.MAX_PATH]uint16

	ret, _, callErr := procGetSystemWindowsDirectory.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 || int(ret) > len(buf) {
		return "", &CallError{Proc: "GetSystemWindowsDirectoryW", Code: lastError(callErr)}
	}

	return windows.UTF16ToString(buf[:ret]), nil
}

// FreeBytes returns the free bytes available to the caller on the volume
// rooted at root.
func (h *Host) FreeBytes(root string) (uint64, error) {
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return 0, err
	}

	var freeBytesAvailable, totalNumberOfBytes, totalNumberOfFreeBytes uint64

	ret, _, callErr := procGetDiskFreeSpaceEx.Call(
		uintptr(unsafe.Pointer(rootPtr)),
		uintptr(unsafe.Pointer(&freeBytesAvailable)),
		uintptr(unsafe.Pointer(&totalNumberOfBytes)),
		uintptr(unsafe.Pointer(&totalNumberOfFreeBytes)),
	)
	if ret == 0 {
		return 0, &CallError{Proc: "GetDiskFreeSpaceExW", Code: lastError(callErr)}
	}

	return freeBytesAvailable, nil
}
