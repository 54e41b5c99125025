package update

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/caldera-labs/aupdate/internal/domain/collection"
	"github.com/caldera-labs/aupdate/internal/domain/feed"
	"github.com/caldera-labs/aupdate/internal/domain/release"
	"github.com/caldera-labs/aupdate/internal/domain/version"
)

// ProgressFunc reports download completion percentage, 0-100.
type ProgressFunc func(percent int)

// FeedFetcher fetches and decodes the update feed. Latest calls it exactly
// once per invocation; CachedLatest never calls it.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]feed.Category, error)
}

// Cache maps a release's file descriptor to a local path, and can check for,
// download, and checksum-validate it (spec §4.E).
type Cache interface {
	LocalPath(file release.FileDescriptor) string
	Exists(file release.FileDescriptor) bool
	Download(ctx context.Context, file release.FileDescriptor, progress ProgressFunc) (string, error)
	Validate(file release.FileDescriptor) bool
}

// State is the immutable value the state machine transitions between. It
// carries no collaborators — just the accumulated progress of a check.
type State struct {
	releases   []release.Release
	earlyAccessEnabled bool
	history    []release.Release
	newRelease *release.Release

	filePath           string
	validated          bool
	validatedURL       string // URL of the descriptor `validated` was last computed against
}

// Available reports whether a new installable release was identified.
func (s State) Available() bool { return s.newRelease != nil }

// Ready reports whether the new release is available and its cached
// installer has passed checksum validation.
func (s State) Ready() bool { return s.Available() && s.validated }

// ReleaseHistory returns the projected, descending-by-version release list.
func (s State) ReleaseHistory() []release.Release {
	out := make([]release.Release, len(s.history))
	copy(out, s.history)

	return out
}

// New returns the identified upgrade candidate, or nil if none.
func (s State) New() *release.Release { return s.newRelease }

// EarlyAccessEnabled reports the channel this state was last projected with.
func (s State) EarlyAccessEnabled() bool { return s.earlyAccessEnabled }

// FilePath returns the local installer path, set once Downloaded succeeds.
func (s State) FilePath() string { return s.filePath }

// IsValidated reports whether the last Validated() call confirmed the
// checksum (independent of whether the release identity has since changed).
func (s State) IsValidated() bool { return s.validated }

// Config holds the engine's fixed, non-collaborator configuration: the
// recognized options of spec §6 not already captured by the FeedFetcher and
// Cache collaborator interfaces (httpClient, feedUriProvider, updatesPath
// live in the feedclient and cache constructors instead).
type Config struct {
	// CurrentVersion is the version of the build currently running.
	CurrentVersion version.Version
	// EarlyAccessCategoryName is the feed category name classified as the
	// early-access channel; every other category is treated as stable.
	EarlyAccessCategoryName string
}

// Engine holds the collaborators (feed fetcher, file cache) and fixed
// configuration that every state transition needs but the State value
// itself must not carry.
type Engine struct {
	fetcher FeedFetcher
	cache   Cache
	config  *Config
}

// NewEngine constructs an Engine.
func NewEngine(fetcher FeedFetcher, cache Cache, config *Config) *Engine {
	return &Engine{
		fetcher: fetcher,
		cache:   cache,
		config:  config,
	}
}

// Latest fetches the feed, always hitting the network, and projects a fresh
// State for the given channel setting.
func (e *Engine) Latest(ctx context.Context, earlyAccessEnabled bool) (State, error) {
	categories, err := e.fetcher.Fetch(ctx)
	if err != nil {
		return State{}, err
	}

	releases := collection.Build(categories, e.config.EarlyAccessCategoryName)
	history, newest := project(releases, e.config.CurrentVersion, earlyAccessEnabled)

	logrus.Debugf("Latest: fetched %d releases, available=%v", len(releases), newest != nil)

	return State{
		releases:           releases,
		earlyAccessEnabled: earlyAccessEnabled,
		history:            history,
		newRelease:         newest,
	}, nil
}

// CachedLatest never performs I/O. It re-projects history and the "new"
// candidate from the releases already held in prev, under the given channel
// setting. If the reprojected new release's file descriptor differs from the
// one `validated` was last computed against, validated is cleared — a
// channel toggle may have surfaced a different upgrade target.
func (e *Engine) CachedLatest(prev State, earlyAccessEnabled bool) State {
	history, newest := project(prev.releases, e.config.CurrentVersion, earlyAccessEnabled)

	validated := prev.validated
	if newest == nil || newest.File() == nil || newest.File().URL() != prev.validatedURL {
		validated = false
	}

	return State{
		releases:           prev.releases,
		earlyAccessEnabled: earlyAccessEnabled,
		history:            history,
		newRelease:         newest,
		filePath:           prev.filePath,
		validated:          validated,
		validatedURL:       prev.validatedURL,
	}
}

// Downloaded streams the new release's installer into the cache. If
// Available was false, it is a pure no-op — the cache, and therefore the
// HTTP client behind it, is never invoked. If the file already exists and
// was already validated against this exact descriptor, the download is
// skipped; otherwise a fresh download is performed and validated is cleared
// until Validated() runs again.
func (e *Engine) Downloaded(ctx context.Context, prev State, progress ProgressFunc) (State, error) {
	if !prev.Available() {
		return prev, nil
	}

	fd := *prev.newRelease.File()

	if e.cache.Exists(fd) && prev.validated && prev.validatedURL == fd.URL() {
		logrus.Debugf("Downloaded: %s already present and validated, skipping", fd.URL())

		return State{
			releases:           prev.releases,
			earlyAccessEnabled: prev.earlyAccessEnabled,
			history:            prev.history,
			newRelease:         prev.newRelease,
			filePath:           e.cache.LocalPath(fd),
			validated:          true,
			validatedURL:       prev.validatedURL,
		}, nil
	}

	path, err := e.cache.Download(ctx, fd, progress)
	if err != nil {
		return State{}, err
	}

	return State{
		releases:           prev.releases,
		earlyAccessEnabled: prev.earlyAccessEnabled,
		history:            prev.history,
		newRelease:         prev.newRelease,
		filePath:           path,
		validated:          false,
		validatedURL:       prev.validatedURL,
	}, nil
}

// Validated recomputes the checksum of the new release's cached installer,
// regardless of any prior validated flag. If Available is false, validated
// is unconditionally false.
func (e *Engine) Validated(prev State) State {
	next := State{
		releases:           prev.releases,
		earlyAccessEnabled: prev.earlyAccessEnabled,
		history:            prev.history,
		newRelease:         prev.newRelease,
		filePath:           prev.filePath,
	}

	if !prev.Available() {
		return next
	}

	fd := *prev.newRelease.File()
	next.validated = e.cache.Validate(fd)
	next.validatedURL = fd.URL()

	if next.filePath == "" {
		next.filePath = e.cache.LocalPath(fd)
	}

	logrus.Debugf("Validated: %s -> %v", fd.URL(), next.validated)

	return next
}
