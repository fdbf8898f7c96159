//go:build windows

package diagnostics

import "golang.org/x/sys/windows"

func isPrivileged() bool {
	if windows.GetCurrentProcessToken().IsElevated() {
		return true
	}
	ok, err := isWindowsAdmin()
	return err == nil && ok
}

// isWindowsAdmin checks BUILTIN\Administrators membership of the caller's
// effective token. CheckTokenMembership only accepts an impersonation token;
// the zero token makes it use the thread or process token itself. Under UAC
// the group is deny-only on a filtered token and is not counted.
func isWindowsAdmin() (bool, error) {
	adminSID, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false, err
	}

	isMember, err := windows.Token(0).IsMember(adminSID)
	if err != nil {
		return false, err
	}

	return isMember, nil
}
