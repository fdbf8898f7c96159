// Package platform identifies the running operating system for the start
// of a checker run.
package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

type Info struct {
	Hostname string

	// Product
	ProductName    string // "Windows 10 Pro"
	DisplayVersion string // "22H2"
	Build          string // CurrentBuildNumber
	UBR            uint64 // update build revision

	// Kernel
	KernelVersion string
	KernelArch    string

	NumCPU int
}

// Detect fills Info from gopsutil and, on Windows, the CurrentVersion
// registry key. Registry values win over gopsutil where both are present.
func Detect(ctx context.Context) (Info, error) {
	info := Info{
		NumCPU:     runtime.NumCPU(),
		KernelArch: runtime.GOARCH,
	}

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		readProductKey(&info)
		return info, fmt.Errorf("host info: %w", err)
	}

	info.Hostname = hi.Hostname
	info.ProductName = hi.Platform
	info.DisplayVersion = hi.PlatformVersion
	info.KernelVersion = hi.KernelVersion
	if hi.KernelArch != "" {
		info.KernelArch = hi.KernelArch
	}

	readProductKey(&info)

	return info, nil
}

// String renders the host line, e.g.
// "Windows 11 Pro 23H2 (build 22631.4317, x86_64)".
func (i Info) String() string {
	var b strings.Builder

	name := i.ProductName
	if name == "" {
		name = runtime.GOOS
	}
	b.WriteString(name)

	if i.DisplayVersion != "" {
		b.WriteString(" " + i.DisplayVersion)
	}

	var extra []string
	switch {
	case i.Build != "" && i.UBR > 0:
		extra = append(extra, fmt.Sprintf("build %s.%d", i.Build, i.UBR))
	case i.Build != "":
		extra = append(extra, "build "+i.Build)
	}
	if i.KernelArch != "" {
		extra = append(extra, i.KernelArch)
	}
	if len(extra) > 0 {
		b.WriteString(" (" + strings.Join(extra, ", ") + ")")
	}

	return b.String()
}
