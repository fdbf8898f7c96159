//go:build windows

package collector

import (
	"unsafe"
)

// DesktopRect returns the rectangle of the desktop window, which spans the
// primary display.
func (h *Host) DesktopRect() (Rect, error) {
	hwnd, _, callErr := procGetDesktopWindow.Call()
	if hwnd == 0 {
		return Rect{}, &CallError{Proc: "GetDesktopWindow", Code: lastError(callErr)}
	}

	var rc rect
	ret, _, callErr := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if ret == 0 {
		return Rect{}, &CallError{Proc: "GetWindowRect", Code: lastError(callErr)}
	}

	return Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}, nil
}
