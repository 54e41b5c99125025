// Package collection flattens feed categories into a single sequence of
// releases, tagging each with the early-access flag derived from its source
// category's name. It preserves in-category order; sorting is the Releases
// View's job.
package collection

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/caldera-labs/aupdate/internal/domain/feed"
	"github.com/caldera-labs/aupdate/internal/domain/release"
	"github.com/caldera-labs/aupdate/internal/domain/version"
)

// Build flattens categories into releases, classifying each as early-access
// by case-insensitive comparison of its category name against
// earlyAccessCategoryName. Categories with a null/empty release list
// contribute nothing. Releases whose version string fails to parse are
// skipped (the feed entry is malformed for this one release only).
func Build(categories []feed.Category, earlyAccessCategoryName string) []release.Release {
	var releases []release.Release

	for _, category := range categories {
		earlyAccess := strings.EqualFold(category.Name, earlyAccessCategoryName)

		for _, raw := range category.Releases {
			ver, err := version.Parse(raw.Version)
			if err != nil {
				logrus.Debugf("skipping release with unparsable version %q in category %q: %v",
					raw.Version, category.Name, err)

				continue
			}

			var file *release.FileDescriptor

			if raw.File != nil {
				fd := release.NewFileDescriptor(raw.File.URL, raw.File.Sha512Checksum)
				file = &fd
			}

			releases = append(releases, release.New(ver, raw.ChangeLog, file, earlyAccess))
		}
	}

	return releases
}
