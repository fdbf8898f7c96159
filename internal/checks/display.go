package checks

import "context"

// ResolutionCheck requires a desktop of at least 1366x768.
type ResolutionCheck struct {
	Source DisplaySource
}

func (c *ResolutionCheck) Title() string { return "Resolution" }

func (c *ResolutionCheck) Run(_ context.Context) Result {
	r := Result{Name: "resolution"}

	rc, err := c.Source.DesktopRect()
	if err != nil {
		return r.failQuery(err)
	}

	width, height := rc.Width(), rc.Height()
	r.AddDetailf("Resolution: %dx%d", width, height)

	if !atLeast(width, MinDesktopWidth) || !atLeast(height, MinDesktopHeight) {
		return r.fail(KindThreshold, nil, "Desktop resolution is less than minimum requirement!")
	}

	return r.pass()
}
