//go:build windows

package collector

// Host reads requirement data from the running Windows installation.
type Host struct{}

// NewHost resolves the native query entry point up front so a broken ntdll
// is reported before any check starts.
func NewHost() (*Host, error) {
	if err := ntdll.Load(); err != nil {
		return nil, err
	}
	if err := procNtQuerySystemInformation.Find(); err != nil {
		return nil, err
	}
	return &Host{}, nil
}
