package checks

import (
	"context"
	"errors"

	"github.com/nhdewitt/w11check/internal/collector"
)

// CPUCheck requires a 1 GHz, 64-bit, dual core processor.
type CPUCheck struct {
	Source CPUSource
}

func (c *CPUCheck) Title() string { return "CPU" }

func (c *CPUCheck) Run(_ context.Context) Result {
	r := Result{Name: "cpu"}

	active, err := c.Source.ActiveProcessorCount()
	if err != nil {
		return r.fail(KindQuery, err, "Active CPU does not exist in your system, %v", err)
	}
	r.AddDetailf("Active processor count: %d", active)
	if !atLeast(active, MinActiveProcessors) {
		return r.fail(KindThreshold, nil, "Active processor count: %d is less than minimum requirement!", active)
	}

	if model := c.Source.ProcessorModel(); model != "" {
		r.AddDetailf("Processor model: %s", model)
	}

	info, err := c.Source.NativeSystemInfo()
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("Processor arch: %s", info.Architecture)

	switch info.Architecture {
	case collector.ArchAMD64, collector.ArchARM64:
	case collector.ArchIA64:
		return r.fail(KindThreshold, nil, "System processor arch must be x64! Itanium (ia64) is not supported")
	default:
		return r.fail(KindThreshold, nil, "System processor arch must be x64! Found: %s", info.Architecture)
	}

	r.AddDetailf("Processor count: %d", info.NumberOfProcessors)
	if !atLeast(info.NumberOfProcessors, MinProcessorCount) {
		return r.fail(KindThreshold, nil, "System processor count: %d is less than minimum requirement!", info.NumberOfProcessors)
	}

	power, err := c.Source.ProcessorPower(info.NumberOfProcessors)
	if err != nil {
		if errors.Is(err, collector.ErrEmptyBuffer) {
			return r.fail(KindResource, err, "processor power buffer allocation failed: %v", err)
		}
		return r.failQuery(err)
	}

	speeds := make([]uint32, 0, len(power))
	for _, p := range power {
		r.AddDetailf("Processor: %d Speed: %d", p.Number, p.CurrentMhz)
		speeds = append(speeds, p.CurrentMhz)
	}

	if countAtLeast(speeds, MinClockMHz) < MinFastProcessors {
		return r.fail(KindThreshold, nil, "System processor speed is less than minimum requirement!")
	}

	return r.pass()
}
