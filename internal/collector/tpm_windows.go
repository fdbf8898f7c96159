//go:build windows

package collector

import (
	"unsafe"
)

// TPMDeviceInfo queries the TPM Base Services for the device description.
// A machine without a TPM returns TBS_E_TPM_NOT_FOUND here.
func (h *Host) TPMDeviceInfo() (TPMDeviceInfo, error) {
	if err := procTbsiGetDeviceInfo.Find(); err != nil {
		return TPMDeviceInfo{}, err
	}

	var info tpmDeviceInfo
	ret, _, _ := procTbsiGetDeviceInfo.Call(
		unsafe.Sizeof(info),
		uintptr(unsafe.Pointer(&info)),
	)
	if uint32(ret) != tbsSuccess {
		return TPMDeviceInfo{}, &CallError{Proc: "Tbsi_GetDeviceInfo", Code: uintptr(uint32(ret)), Status: true}
	}

	return TPMDeviceInfo{
		StructVersion: info.StructVersion,
		Version:       info.TpmVersion,
		InterfaceType: info.TpmInterfaceType,
		ImpRevision:   info.TpmImpRevision,
	}, nil
}
