package checks

import "context"

// TPMCheck requires a TPM 2.0 device.
type TPMCheck struct {
	Source TPMSource
}

func (c *TPMCheck) Title() string { return "TPM" }

func (c *TPMCheck) Run(_ context.Context) Result {
	r := Result{Name: "tpm"}

	info, err := c.Source.TPMDeviceInfo()
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("TPM version: %d Interface: %d", info.Version, info.InterfaceType)

	if info.Version != RequiredTPMVersion {
		return r.fail(KindThreshold, nil, "TPM version: %d is less than minimum requirement!", info.Version)
	}

	return r.pass()
}
