//go:build windows

package collector

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows/registry"
)

// ActiveProcessorCount returns the number of active logical processors
// across all processor groups.
func (h *Host) ActiveProcessorCount() (uint32, error) {
	if err := procGetActiveProcessorCount.Find(); err != nil {
		return 0, err
	}
	ret, _, callErr := procGetActiveProcessorCount.Call(allProcessorGroups)
	if uint32(ret) == 0 {
		return 0, &CallError{Proc: "GetActiveProcessorCount", Code: lastError(callErr)}
	}
	return uint32(ret), nil
}

// NativeSystemInfo reports the native processor architecture and count,
// ignoring WOW64 emulation.
func (h *Host) NativeSystemInfo() (SystemInfo, error) {
	if err := procGetNativeSystemInfo.Find(); err != nil {
		return SystemInfo{}, err
	}

	var info systemInfo
	procGetNativeSystemInfo.Call(uintptr(unsafe.Pointer(&info)))

	return SystemInfo{
		Architecture:       ProcessorArchitecture(info.ProcessorArchitecture),
		NumberOfProcessors: info.NumberOfProcessors,
	}, nil
}

// ProcessorPower returns one power entry per logical processor.
// count must be the processor count reported by NativeSystemInfo.
func (h *Host) ProcessorPower(count uint32) ([]ProcessorPower, error) {
	if count == 0 {
		return nil, ErrEmptyBuffer
	}

	buf := make([]processorPowerInformation, count)
	bufferSize := uintptr(len(buf)) * unsafe.Sizeof(buf[0])

	ret, _, _ := procCallNtPowerInformation.Call(
		uintptr(processorInfoLevel),
		0,
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		bufferSize,
	)
	if ret != statusSuccess {
		return nil, &CallError{Proc: "CallNtPowerInformation", Code: ret, Status: true}
	}

	result := make([]ProcessorPower, len(buf))
	for i, p := range buf {
		result[i] = ProcessorPower{
			Number:     p.Number,
			MaxMhz:     p.MaxMhz,
			CurrentMhz: p.CurrentMhz,
			MhzLimit:   p.MhzLimit,
		}
	}
	return result, nil
}

// ProcessorModel returns the CPU brand string. cpuid is authoritative on
// x86; ARM hosts fall back to the registry.
func (h *Host) ProcessorModel() string {
	if name := strings.TrimSpace(cpuid.CPU.BrandName); name != "" {
		if level := cpuid.CPU.X64Level(); level > 0 {
			return fmt.Sprintf("%s (x86-64-v%d)", name, level)
		}
		return name
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	name, _, _ := k.GetStringValue("ProcessorNameString")
	return strings.TrimSpace(name)
}
