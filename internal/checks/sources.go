package checks

import (
	"context"

	"github.com/nhdewitt/w11check/internal/collector"
)

// CPUSource supplies processor readings.
type CPUSource interface {
	ActiveProcessorCount() (uint32, error)
	NativeSystemInfo() (collector.SystemInfo, error)
	ProcessorPower(count uint32) ([]collector.ProcessorPower, error)
	ProcessorModel() string
}

// MemorySource supplies installed RAM in kilobytes.
type MemorySource interface {
	InstalledMemoryKB() (uint64, error)
}

// DiskSource supplies the system volume and its free space.
type DiskSource interface {
	WindowsDirectory() (string, error)
	FreeBytes(root string) (uint64, error)
}

// DisplaySource supplies the desktop rectangle.
type DisplaySource interface {
	DesktopRect() (collector.Rect, error)
}

// FirmwareSource supplies boot environment and secure boot state.
type FirmwareSource interface {
	FirmwareType() (collector.FirmwareType, error)
	SecureBoot() (collector.SecureBootState, error)
}

// TPMSource supplies the trusted platform module description.
type TPMSource interface {
	TPMDeviceInfo() (collector.TPMDeviceInfo, error)
}

// GraphicsSource answers whether a graphics runtime is installed.
type GraphicsSource interface {
	RuntimeInstalled(library string) (bool, error)
	VideoControllers() ([]collector.VideoController, error)
}

// DriverModelReader returns the text that carries the display driver model
// version. The default implementation is collector.DxDiag.
type DriverModelReader interface {
	Report(ctx context.Context) (string, error)
}

// Host is every reading source the checklist needs.
type Host interface {
	CPUSource
	MemorySource
	DiskSource
	DisplaySource
	FirmwareSource
	TPMSource
	GraphicsSource
}
