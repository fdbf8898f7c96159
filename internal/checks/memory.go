package checks

import "context"

// MemoryCheck requires more than ~4 GB of installed RAM.
type MemoryCheck struct {
	Source MemorySource
}

func (c *MemoryCheck) Title() string { return "RAM" }

func (c *MemoryCheck) Run(_ context.Context) Result {
	r := Result{Name: "ram"}

	totalKB, err := c.Source.InstalledMemoryKB()
	if err != nil {
		return r.failQuery(err)
	}
	r.AddDetailf("RAM capacity: %d", totalKB)

	// Exactly the threshold fails.
	if totalKB <= MemoryThresholdKB {
		return r.fail(KindThreshold, nil, "RAM capacity is less than minimum requirement!")
	}

	return r.pass()
}
