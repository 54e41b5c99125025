package cmd

import "errors"

var (
	// ErrCurrentVersionRequired is returned when --current-version is missing.
	ErrCurrentVersionRequired = errors.New("--current-version is required")

	// ErrFeedURLRequired is returned when neither --feed-url nor
	// AUPDATE_FEED_URL is set.
	ErrFeedURLRequired = errors.New("--feed-url or AUPDATE_FEED_URL is required")

	// ErrNoUpdateAvailable is returned when a command requiring an available
	// update (download, validate) finds none.
	ErrNoUpdateAvailable = errors.New("no update available")

	// ErrUpdateNotReady is returned when update attempts to launch an
	// installer that has not passed checksum validation.
	ErrUpdateNotReady = errors.New("update is not ready: download or checksum validation has not succeeded")
)
