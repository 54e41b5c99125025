//go:build windows

package platform

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedProcAttr spawns the installer in its own process group, detached
// from aupdate's console, so it survives the parent exiting.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
