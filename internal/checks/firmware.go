package checks

import (
	"context"

	"github.com/nhdewitt/w11check/internal/collector"
)

// FirmwareCheck requires UEFI boot.
type FirmwareCheck struct {
	Source FirmwareSource
}

func (c *FirmwareCheck) Title() string { return "Firmware" }

func (c *FirmwareCheck) Run(_ context.Context) Result {
	r := Result{Name: "firmware"}

	fw, err := c.Source.FirmwareType()
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("Firmware type: %s", fw)

	if fw != collector.FirmwareUEFI {
		return r.fail(KindThreshold, nil, "Boot firmware: %s is not allowed!", fw)
	}

	return r.pass()
}

// SecureBootCheck requires secure boot to be both capable and enabled.
type SecureBootCheck struct {
	Source FirmwareSource
}

func (c *SecureBootCheck) Title() string { return "Secure boot" }

func (c *SecureBootCheck) Run(_ context.Context) Result {
	r := Result{Name: "secure_boot"}

	sb, err := c.Source.SecureBoot()
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("Secure boot capable: %t Enabled: %t", sb.Capable, sb.Enabled)

	if !sb.Capable || !sb.Enabled {
		return r.fail(KindThreshold, nil, "Secure boot must be capable and enabled!")
	}

	return r.pass()
}
