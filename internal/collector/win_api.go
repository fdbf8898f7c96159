//go:build windows

package collector

import (
	"golang.org/x/sys/windows"
)

const (
	// CPU/System

	allProcessorGroups = 0xFFFF
	processorInfoLevel = 11 // POWER_INFORMATION_LEVEL: ProcessorInformation

	// NtQuerySystemInformation classes

	systemBootEnvironmentInformation = 90
	systemSecureBootInformation      = 145

	statusSuccess = 0

	// TBS

	tbsSuccess = 0
)

// --- Struct Definitions ---

// Hardware topology
type systemInfo struct {
	ProcessorArchitecture     uint16
	Reserved                  uint16
	PageSize                  uint32
	MinimumApplicationAddress uintptr
	MaximumApplicationAddress uintptr
	ActiveProcessorMask       uintptr
	NumberOfProcessors        uint32
	ProcessorType             uint32
	AllocationGranularity     uint32
	ProcessorLevel            uint16
	ProcessorRevision         uint16
}

type processorPowerInformation struct {
	Number           uint32
	MaxMhz           uint32
	CurrentMhz       uint32
	MhzLimit         uint32
	MaxIdleState     uint32
	CurrentIdleState uint32
}

// Firmware

type systemBootEnvironmentInfo struct {
	BootIdentifier windows.GUID
	FirmwareType   uint32
	_              uint32 // Padding for 8-byte alignment
	BootFlags      uint64
}

type systemSecureBootInfo struct {
	SecureBootEnabled byte
	SecureBootCapable byte
}

// TPM

type tpmDeviceInfo struct {
	StructVersion    uint32
	TpmVersion       uint32
	TpmInterfaceType uint32
	TpmImpRevision   uint32
}

// Display

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WMI

type win32VideoController struct {
	Name          string
	DriverVersion string
}

// --- DLL & Procedure Handles

var (
	// DLLs

	ntdll    = windows.NewLazySystemDLL("ntdll.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	powrprof = windows.NewLazySystemDLL("powrprof.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")
	tbs      = windows.NewLazySystemDLL("tbs.dll")

	// CPU/System

	procNtQuerySystemInformation = ntdll.NewProc("NtQuerySystemInformation")
	procGetNativeSystemInfo      = kernel32.NewProc("GetNativeSystemInfo")
	procGetActiveProcessorCount  = kernel32.NewProc("GetActiveProcessorCount")
	procCallNtPowerInformation   = powrprof.NewProc("CallNtPowerInformation")

	// Memory

	procGetPhysicallyInstalledSystemMemory = kernel32.NewProc("GetPhysicallyInstalledSystemMemory")

	// Filesystem/Disk

	procGetSystemWindowsDirectory = kernel32.NewProc("GetSystemWindowsDirectoryW")
	procGetDiskFreeSpaceEx        = kernel32.NewProc("GetDiskFreeSpaceExW")

	// Display

	procGetDesktopWindow = user32.NewProc("GetDesktopWindow")
	procGetWindowRect    = user32.NewProc("GetWindowRect")

	// TPM

	procTbsiGetDeviceInfo = tbs.NewProc("Tbsi_GetDeviceInfo")
)

// lastError extracts the numeric Win32 error from the third return of Proc.Call.
func lastError(err error) uintptr {
	if errno, ok := err.(windows.Errno); ok {
		return uintptr(errno)
	}
	return 0
}
