// Package constants contains the constants shared across the update engine.
package constants

import "time"

const (
	// WindowsOS is the string for Windows OS.
	WindowsOS = "windows"

	// FilePerm is the file permission for created files.
	FilePerm = 0o644
	// DirPerm is the directory permission for created directories.
	DirPerm = 0o755

	// Sha512HexLen is the length of a lowercase-hex SHA-512 digest.
	Sha512HexLen = 128

	// ClientTimeoutSec is the default HTTP client timeout in seconds.
	ClientTimeoutSec = 30
	// DefaultTimeout is the default timeout for downloads.
	DefaultTimeout = 5 * time.Minute

	// ProgressBarWidth is the default width of the progress bar.
	ProgressBarWidth = 20
	// ProgressFilled is the character for filled portion of the bar.
	ProgressFilled = "█"
	// ProgressEmpty is the character for empty portion of the bar.
	ProgressEmpty = "░"
	// ProgressMax is the maximum percentage value.
	ProgressMax = 100
	// ProgressDiv is the progress division factor.
	ProgressDiv = 100

	// Checkmark is the checkmark icon.
	Checkmark = "✓"
	// Cross is the cross icon.
	Cross = "✖"
	// Info is the info icon.
	Info = "ℹ"
	// Warn is the warn icon.
	Warn = "⚠"
	// Upgrade is the upgrade icon.
	Upgrade = "↑"
	// Prompt is the prompt icon.
	Prompt = "?"

	// ChangelogDisplayLimit caps how many changelog lines a CLI view prints per release.
	ChangelogDisplayLimit = 5

	// DefaultEarlyAccessCategoryName is the default category name treated as the early-access channel.
	DefaultEarlyAccessCategoryName = "EarlyAccess"

	// ConfigDirEnvVar is the environment variable overriding the config/cache base directory.
	ConfigDirEnvVar = "AUPDATE_CONFIG_DIR"

	// CacheDirName is the subdirectory name under the config dir holding downloaded installers.
	CacheDirName = "updates"
)
