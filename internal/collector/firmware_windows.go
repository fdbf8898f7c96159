//go:build windows

package collector

import (
	"unsafe"
)

// FirmwareType reports whether the system booted through legacy BIOS or UEFI.
func (h *Host) FirmwareType() (FirmwareType, error) {
	var info systemBootEnvironmentInfo
	if err := querySystemInformation("SystemBootEnvironmentInformation",
		systemBootEnvironmentInformation, unsafe.Pointer(&info), unsafe.Sizeof(info)); err != nil {
		return FirmwareUnknown, err
	}
	return FirmwareType(info.FirmwareType), nil
}

// SecureBoot reports the secure boot capable/enabled flags.
func (h *Host) SecureBoot() (SecureBootState, error) {
	var info systemSecureBootInfo
	if err := querySystemInformation("SystemSecureBootInformation",
		systemSecureBootInformation, unsafe.Pointer(&info), unsafe.Sizeof(info)); err != nil {
		return SecureBootState{}, err
	}
	return SecureBootState{
		Enabled: info.SecureBootEnabled != 0,
		Capable: info.SecureBootCapable != 0,
	}, nil
}

func querySystemInformation(name string, class uintptr, buf unsafe.Pointer, size uintptr) error {
	if err := procNtQuerySystemInformation.Find(); err != nil {
		return err
	}

	var returnLength uint32
	ret, _, _ := procNtQuerySystemInformation.Call(
		class,
		uintptr(buf),
		size,
		uintptr(unsafe.Pointer(&returnLength)),
	)
	if ret != statusSuccess {
		return &CallError{Proc: "NtQuerySystemInformation(" + name + ")", Code: ret, Status: true}
	}
	return nil
}
