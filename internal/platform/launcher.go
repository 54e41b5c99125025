// Package platform holds the OS-specific edges of the update engine: the
// Launcher Adapter (spec §4.G) and the default cache/config directory
// resolution shared by the CLI commands.
package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Launcher hands a validated installer path to the OS, detached from the
// calling process so the update can proceed (and, on Windows, replace the
// running binary) after aupdate exits.
type Launcher struct{}

// NewLauncher constructs a Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch spawns installerPath with args, detached from the current process
// group so it outlives aupdate's own exit. It does not wait for the
// installer to finish — spec §4.G hands off and returns.
func (l *Launcher) Launch(ctx context.Context, installerPath string, args ...string) error {
	if _, err := os.Stat(installerPath); err != nil {
		return fmt.Errorf("installer not found at %s: %w", installerPath, err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to launch installer: %w", err)
	}

	logrus.Debugf("launching installer: %s %v", installerPath, args)

	// exec.Command, not CommandContext: a context-bound process is killed
	// once the context ends, which would stop the installer as soon as the
	// caller cancels it on return.
	cmd := exec.Command(installerPath, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachedProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch installer: %w", err)
	}

	// Deliberately not Wait()-ed: the installer may replace or restart the
	// very binary that is running aupdate.
	return nil
}
