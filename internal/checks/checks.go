// Package checks holds the Windows 11 requirement checklist: nine
// query-then-compare gates and the fail-fast runner that executes them.
//
// Checks depend only on small reading interfaces, so every gate can be
// exercised with fake readings on any OS.
package checks

import "github.com/sirupsen/logrus"

// Default returns the checklist in its fixed order.
func Default(host Host, reader DriverModelReader, log *logrus.Entry) []Check {
	return []Check{
		&CPUCheck{Source: host},
		&MemoryCheck{Source: host},
		&DiskCheck{Source: host},
		&ResolutionCheck{Source: host},
		&FirmwareCheck{Source: host},
		&SecureBootCheck{Source: host},
		&TPMCheck{Source: host},
		&DirectXCheck{Source: host, Log: log},
		&WDDMCheck{Reader: reader},
	}
}
