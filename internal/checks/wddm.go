package checks

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/nhdewitt/w11check/internal/collector"
)

// WDDMCheck requires a WDDM 2.x display driver model, as advertised in the
// diagnostic report.
type WDDMCheck struct {
	Reader DriverModelReader
}

func (c *WDDMCheck) Title() string { return "WDDM" }

func (c *WDDMCheck) Run(ctx context.Context) Result {
	r := Result{Name: "wddm"}

	report, err := c.Reader.Report(ctx)
	if err != nil {
		var exitErr *collector.ToolExitError
		switch {
		case errors.As(err, &exitErr):
			return r.fail(KindProcess, err, "%v", exitErr)
		case errors.Is(err, collector.ErrEmptyReport):
			return r.fail(KindProcess, err, "dxdiag output file read failed: %v", err)
		default:
			return r.fail(KindProcess, err, "%v", err)
		}
	}

	for _, line := range driverModelLines(report) {
		r.AddDetailf("%s", line)
	}

	if !strings.Contains(report, DriverModelMarker) {
		return r.fail(KindPattern, nil, "WDDM 2 marker not found in dxdiag config!")
	}

	return r.pass()
}

// driverModelLines returns the distinct "Driver Model:" lines of a report.
func driverModelLines(report string) []string {
	var lines []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(strings.NewReader(report))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "Driver Model:") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return lines
}
