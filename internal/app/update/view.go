// Package update implements the Releases View projection and the
// Latest/CachedLatest/Downloaded/Validated state machine (spec §4.D, §4.F).
package update

import (
	"sort"

	"github.com/caldera-labs/aupdate/internal/domain/release"
	"github.com/caldera-labs/aupdate/internal/domain/version"
)

// project derives the visible release history and the "new" candidate from
// releases given the viewer's currentVersion and earlyAccessEnabled flag.
//
// History, when earlyAccessEnabled is false, contains every stable release
// plus any early-access release the user would traverse on the way to the
// newest stable release: strictly above currentVersion and at or below the
// newest stable release, or exactly equal to currentVersion (the currently
// running build may itself have shipped from the early-access channel).
// Early-access releases below currentVersion are always excluded. When
// earlyAccessEnabled is true, every release is visible.
//
// New is the highest-version installable release strictly above
// currentVersion, restricted to the channels earlyAccessEnabled allows.
func project(releases []release.Release, current version.Version, earlyAccessEnabled bool) (
	history []release.Release, newest *release.Release,
) {
	newestStable, hasStable := latestStable(releases)

	for _, r := range releases {
		if earlyAccessEnabled {
			history = append(history, r)

			continue
		}

		if !r.EarlyAccess() {
			history = append(history, r)

			continue
		}

		if r.Version().Equal(current) {
			history = append(history, r)

			continue
		}

		if hasStable && r.Version().GreaterThan(current) && r.Version().LessThanOrEqual(newestStable) {
			history = append(history, r)
		}
	}

	sortDescending(history)

	var candidates []release.Release

	for _, r := range releases {
		if !r.IsNew(current) {
			continue
		}

		if !earlyAccessEnabled && r.EarlyAccess() {
			continue
		}

		candidates = append(candidates, r)
	}

	sortDescending(candidates)

	if len(candidates) > 0 {
		newest = &candidates[0]
	}

	return history, newest
}

// latestStable returns the highest-version release whose EarlyAccess() is
// false, and whether any stable release exists at all.
func latestStable(releases []release.Release) (version.Version, bool) {
	var (
		best  version.Version
		found bool
	)

	for _, r := range releases {
		if r.EarlyAccess() {
			continue
		}

		if !found || r.Version().GreaterThan(best) {
			best = r.Version()
			found = true
		}
	}

	return best, found
}

// sortDescending sorts releases by version, descending, stably (equal
// versions retain their source order).
func sortDescending(releases []release.Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Version().GreaterThan(releases[j].Version())
	})
}
