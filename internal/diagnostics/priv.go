// Package diagnostics inspects the process environment the checker runs in.
package diagnostics

// IsElevated reports whether the process runs with administrator rights
// (root outside Windows). Firmware and TPM queries can be refused to a
// standard user token.
func IsElevated() bool {
	return isPrivileged()
}
