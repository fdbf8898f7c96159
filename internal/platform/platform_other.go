//go:build !windows

package platform

func readProductKey(*Info) {}
