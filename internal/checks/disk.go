package checks

import (
	"context"
	"fmt"
)

// DiskCheck requires 64 GiB free on the volume holding Windows.
type DiskCheck struct {
	Source DiskSource
}

func (c *DiskCheck) Title() string { return "Disk" }

func (c *DiskCheck) Run(_ context.Context) Result {
	r := Result{Name: "disk"}

	winDir, err := c.Source.WindowsDirectory()
	if err != nil {
		return r.failQuery(err)
	}

	root, err := volumeRoot(winDir)
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("Windows directory: %s Target device: %s", winDir, root)

	free, err := c.Source.FreeBytes(root)
	if err != nil {
		return r.failQuery(err)
	}

	freeGiB := bytesToGiB(free)
	r.AddDetailf("Free space: %d GB", freeGiB)

	if !atLeast(freeGiB, MinFreeDiskGiB) {
		return r.fail(KindThreshold, nil, "Disk capacity is less than minimum requirement!")
	}

	return r.pass()
}

// volumeRoot returns the drive prefix ("C:\") of a Windows path.
func volumeRoot(path string) (string, error) {
	if len(path) < 3 || path[1] != ':' {
		return "", fmt.Errorf("windows directory %q has no drive prefix", path)
	}
	return path[:3], nil
}
