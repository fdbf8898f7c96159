package collector

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned by NewHost on platforms without the Windows APIs.
	ErrUnsupported = errors.New("platform is not supported, Windows is required")

	// ErrEmptyBuffer is returned when a query would be issued with a zero-length output buffer.
	ErrEmptyBuffer = errors.New("zero-length query buffer")

	// ErrEmptyReport is returned when the diagnostic tool produced no output.
	ErrEmptyReport = errors.New("diagnostic report is empty")
)

// ProcessorArchitecture mirrors SYSTEM_INFO.wProcessorArchitecture.
type ProcessorArchitecture uint16

const (
	ArchIntel   ProcessorArchitecture = 0
	ArchARM     ProcessorArchitecture = 5
	ArchIA64    ProcessorArchitecture = 6
	ArchAMD64   ProcessorArchitecture = 9
	ArchARM64   ProcessorArchitecture = 12
	ArchUnknown ProcessorArchitecture = 0xFFFF
)

func (a ProcessorArchitecture) String() string {
	switch a {
	case ArchIntel:
		return "x86"
	case ArchARM:
		return "arm"
	case ArchIA64:
		return "ia64"
	case ArchAMD64:
		return "amd64"
	case ArchARM64:
		return "arm64"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(a))
	}
}

// SystemInfo is the subset of GetNativeSystemInfo the checks look at.
type SystemInfo struct {
	Architecture       ProcessorArchitecture
	NumberOfProcessors uint32
}

// ProcessorPower is one PROCESSOR_POWER_INFORMATION entry.
type ProcessorPower struct {
	Number     uint32
	MaxMhz     uint32
	CurrentMhz uint32
	MhzLimit   uint32
}

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// FirmwareType mirrors the FIRMWARE_TYPE enum.
type FirmwareType uint32

const (
	FirmwareUnknown FirmwareType = 0
	FirmwareBIOS    FirmwareType = 1
	FirmwareUEFI    FirmwareType = 2
)

func (f FirmwareType) String() string {
	switch f {
	case FirmwareUnknown:
		return "Unknown"
	case FirmwareBIOS:
		return "BIOS"
	case FirmwareUEFI:
		return "UEFI"
	default:
		return fmt.Sprintf("FirmwareType(%d)", uint32(f))
	}
}

// SecureBootState holds the SYSTEM_SECUREBOOT_INFORMATION flags.
type SecureBootState struct {
	Enabled bool
	Capable bool
}

// TPMDeviceInfo mirrors TPM_DEVICE_INFO.
type TPMDeviceInfo struct {
	StructVersion uint32
	Version       uint32
	InterfaceType uint32
	ImpRevision   uint32
}

// VideoController is a display adapter as reported by WMI.
type VideoController struct {
	Name          string
	DriverVersion string
}

// CallError reports a failed platform call together with the raw code it
// returned (a Win32 error from GetLastError or an NTSTATUS / TBS result).
type CallError struct {
	Proc   string
	Code   uintptr
	Status bool // Code is a status value rather than a last-error value
}

func (e *CallError) Error() string {
	if e.Status {
		return fmt.Sprintf("%s failed with status: 0x%x", e.Proc, e.Code)
	}
	return fmt.Sprintf("%s failed with error: %d", e.Proc, e.Code)
}
