package checks

import (
	"context"

	"github.com/nhdewitt/w11check/internal/collector"
)

const gib = 1024 * 1024 * 1024

// fakeHost returns canned readings and counts calls per reading so tests
// can assert which checks actually ran.
type fakeHost struct {
	active    uint32
	activeErr error
	sysInfo   collector.SystemInfo
	sysErr    error
	power     []collector.ProcessorPower
	powerErr  error
	model     string

	memKB  uint64
	memErr error

	winDir    string
	winDirErr error
	free      uint64
	freeErr   error
	freeRoot  string

	rect    collector.Rect
	rectErr error

	firmware    collector.FirmwareType
	firmwareErr error
	secureBoot  collector.SecureBootState
	sbErr       error

	tpm    collector.TPMDeviceInfo
	tpmErr error

	runtimeOK  bool
	runtimeErr error
	adapters   []collector.VideoController
	adapterErr error

	calls map[string]int
	order []string
}

// passingHost returns readings that satisfy every requirement.
func passingHost() *fakeHost {
	return &fakeHost{
		active:  8,
		sysInfo: collector.SystemInfo{Architecture: collector.ArchAMD64, NumberOfProcessors: 4},
		power: []collector.ProcessorPower{
			{Number: 0, CurrentMhz: 2400},
			{Number: 1, CurrentMhz: 2400},
			{Number: 2, CurrentMhz: 800},
			{Number: 3, CurrentMhz: 2400},
		},
		model:      "Test CPU",
		memKB:      16 * 1024 * 1024,
		winDir:     `C:\Windows`,
		free:       200 * gib,
		rect:       collector.Rect{Right: 1920, Bottom: 1080},
		firmware:   collector.FirmwareUEFI,
		secureBoot: collector.SecureBootState{Enabled: true, Capable: true},
		tpm:        collector.TPMDeviceInfo{StructVersion: 1, Version: 2},
		runtimeOK:  true,
		adapters:   []collector.VideoController{{Name: "Test GPU", DriverVersion: "31.0.101.5186"}},
	}
}

func (f *fakeHost) hit(name string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	f.order = append(f.order, name)
}

func (f *fakeHost) ActiveProcessorCount() (uint32, error) {
	f.hit("active")
	return f.active, f.activeErr
}

func (f *fakeHost) NativeSystemInfo() (collector.SystemInfo, error) {
	f.hit("sysinfo")
	return f.sysInfo, f.sysErr
}

func (f *fakeHost) ProcessorPower(count uint32) ([]collector.ProcessorPower, error) {
	f.hit("power")
	return f.power, f.powerErr
}

func (f *fakeHost) ProcessorModel() string { return f.model }

func (f *fakeHost) InstalledMemoryKB() (uint64, error) {
	f.hit("memory")
	return f.memKB, f.memErr
}

func (f *fakeHost) WindowsDirectory() (string, error) {
	f.hit("windir")
	return f.winDir, f.winDirErr
}

func (f *fakeHost) FreeBytes(root string) (uint64, error) {
	f.hit("free")
	f.freeRoot = root
	return f.free, f.freeErr
}

func (f *fakeHost) DesktopRect() (collector.Rect, error) {
	f.hit("rect")
	return f.rect, f.rectErr
}

func (f *fakeHost) FirmwareType() (collector.FirmwareType, error) {
	f.hit("firmware")
	return f.firmware, f.firmwareErr
}

func (f *fakeHost) SecureBoot() (collector.SecureBootState, error) {
	f.hit("secureboot")
	return f.secureBoot, f.sbErr
}

func (f *fakeHost) TPMDeviceInfo() (collector.TPMDeviceInfo, error) {
	f.hit("tpm")
	return f.tpm, f.tpmErr
}

func (f *fakeHost) RuntimeInstalled(library string) (bool, error) {
	f.hit("runtime")
	return f.runtimeOK, f.runtimeErr
}

func (f *fakeHost) VideoControllers() ([]collector.VideoController, error) {
	f.hit("adapters")
	return f.adapters, f.adapterErr
}

type fakeReader struct {
	report string
	err    error
	calls  int
}

func (r *fakeReader) Report(context.Context) (string, error) {
	r.calls++
	return r.report, r.err
}

const passingReport = `------------------
Display Devices
------------------
           Card name: Test GPU
      Driver Model: WDDM 2.7
`
