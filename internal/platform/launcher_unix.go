//go:build !windows

package platform

import "syscall"

// detachedProcAttr starts the installer in a new session so it survives
// aupdate's own process exiting.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
