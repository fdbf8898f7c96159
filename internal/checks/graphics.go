package checks

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DirectXCheck requires the DirectX 12 runtime. Loading the library is the
// whole test; adapters are listed for information only once it passes.
type DirectXCheck struct {
	Source GraphicsSource
	Log    *logrus.Entry
}

func (c *DirectXCheck) Title() string { return "DirectX" }

func (c *DirectXCheck) Run(_ context.Context) Result {
	r := Result{Name: "directx"}

	ok, err := c.Source.RuntimeInstalled(GraphicsRuntime)
	if err != nil {
		return r.fail(KindQuery, err, "DirectX 12 compatibility check failed! Module load error: %v", err)
	}
	if !ok {
		return r.fail(KindThreshold, nil, "DirectX 12 compatibility check failed! %s is not installed", GraphicsRuntime)
	}

	adapters, err := c.Source.VideoControllers()
	if err != nil && c.Log != nil {
		c.Log.WithError(err).Warn("display adapter query failed")
	}
	for _, a := range adapters {
		r.AddDetailf("Display adapter: %s Driver: %s", a.Name, a.DriverVersion)
	}

	return r.pass()
}
