package platform

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/caldera-labs/aupdate/internal/constants"
)

// ConfigDir determines the base directory aupdate stores its downloaded
// installers under.
//
// Resolution order:
//
//  1. The AUPDATE_CONFIG_DIR environment variable, if set — the explicit
//     override.
//  2. XDG_CONFIG_HOME, if set (Linux/macOS convention).
//  3. %LOCALAPPDATA% on Windows, $HOME/.config elsewhere.
func ConfigDir() (string, error) {
	if dir := os.Getenv(constants.ConfigDirEnvVar); dir != "" {
		return dir, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aupdate"), nil
	}

	if runtime.GOOS == constants.WindowsOS {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "aupdate"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "aupdate"), nil
}

// CacheDir returns the subdirectory of ConfigDir that holds downloaded
// installers.
func CacheDir() (string, error) {
	base, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(base, constants.CacheDirName), nil
}
