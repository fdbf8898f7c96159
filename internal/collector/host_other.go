//go:build !windows

package collector

// Host is a placeholder on platforms without the Windows APIs; every
// reading returns ErrUnsupported.
type Host struct{}

func NewHost() (*Host, error) {
	return nil, ErrUnsupported
}

func (h *Host) ActiveProcessorCount() (uint32, error) { return 0, ErrUnsupported }
func (h *Host) NativeSystemInfo() (SystemInfo, error) { return SystemInfo{}, ErrUnsupported }
func (h *Host) ProcessorPower(uint32) ([]ProcessorPower, error) { return nil, ErrUnsupported }
func (h *Host) ProcessorModel() string { return "" }
func (h *Host) InstalledMemoryKB() (uint64, error) { return 0, ErrUnsupported }
func (h *Host) WindowsDirectory() (string, error) { return "", ErrUnsupported }
func (h *Host) FreeBytes(string) (uint64, error) { return 0, ErrUnsupported }
func (h *Host) DesktopRect() (Rect, error) { return Rect{}, ErrUnsupported }
func (h *Host) FirmwareType() (FirmwareType, error) { return FirmwareUnknown, ErrUnsupported }
func (h *Host) SecureBoot() (SecureBootState, error) { return SecureBootState{}, ErrUnsupported }
func (h *Host) TPMDeviceInfo() (TPMDeviceInfo, error) { return TPMDeviceInfo{}, ErrUnsupported }
func (h *Host) RuntimeInstalled(string) (bool, error) { return false, ErrUnsupported }
func (h *Host) VideoControllers() ([]VideoController, error) { return nil, ErrUnsupported }
