//go:build windows

package platform

import "golang.org/x/sys/windows/registry"

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

func readProductKey(info *Info) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return
	}
	defer k.Close()

	if val, _, err := k.GetStringValue("ProductName"); err == nil {
		info.ProductName = val
	}
	if val, _, err := k.GetStringValue("DisplayVersion"); err == nil {
		info.DisplayVersion = val
	}
	if val, _, err := k.GetStringValue("CurrentBuildNumber"); err == nil {
		info.Build = val
	}
	if val, _, err := k.GetIntegerValue("UBR"); err == nil {
		info.UBR = val
	}
}
