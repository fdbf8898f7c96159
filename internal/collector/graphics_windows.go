//go:build windows

package collector

import (
	"errors"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

// RuntimeInstalled reports whether the named runtime library can be loaded
// from the system directory. Nothing inside the library is called. A library
// that is not there is (false, nil); any other load failure is an error.
func (h *Host) RuntimeInstalled(library string) (bool, error) {
	err := windows.NewLazySystemDLL(library).Load()
	switch {
	case err == nil:
		return true, nil
	case isModuleNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

func isModuleNotFound(err error) bool {
	return errors.Is(err, windows.ERROR_MOD_NOT_FOUND) || errors.Is(err, windows.ERROR_FILE_NOT_FOUND)
}

// VideoControllers lists display adapters via WMI.
func (h *Host) VideoControllers() ([]VideoController, error) {
	var dst []win32VideoController

	if err := wmi.Query("SELECT Name, DriverVersion FROM Win32_VideoController", &dst); err != nil {
		return nil, err
	}

	out := make([]VideoController, 0, len(dst))
	for _, v := range dst {
		out = append(out, VideoController{Name: v.Name, DriverVersion: v.DriverVersion})
	}
	return out, nil
}
