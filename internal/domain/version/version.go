// Package version provides the four-component semantic version used to
// order releases and decide what is newer than the currently running build.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an immutable major.minor.build.patch tuple. Patch is optional
// on parse and defaults to 0.
type Version struct {
	major, minor, build, patch int
}

// New constructs a Version directly from its components.
func New(major, minor, build, patch int) Version {
	return Version{major: major, minor: minor, build: build, patch: patch}
}

// Parse reads a dotted version string ("A.B.C[.D]") into a Version.
// A leading "v" is tolerated. Missing trailing components default to 0.
func Parse(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "v")
	trimmed = strings.TrimPrefix(trimmed, "V")

	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty version string", ErrInvalidVersion)
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > 4 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	nums := make([]int, 4)

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
		}

		nums[i] = n
	}

	return Version{major: nums[0], minor: nums[1], build: nums[2], patch: nums[3]}, nil
}

// Major returns the major component.
func (v Version) Major() int { return v.major }

// Minor returns the minor component.
func (v Version) Minor() int { return v.minor }

// Build returns the build component.
func (v Version) Build() int { return v.build }

// Patch returns the patch component, 0 when absent from the source string.
func (v Version) Patch() int { return v.patch }

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.major, other.major); c != 0 {
		return c
	}

	if c := compareInt(v.minor, other.minor); c != 0 {
		return c
	}

	if c := compareInt(v.build, other.build); c != 0 {
		return c
	}

	return compareInt(v.patch, other.patch)
}

// GreaterThan reports whether v is strictly greater than other.
func (v Version) GreaterThan(other Version) bool { return v.Compare(other) > 0 }

// LessThanOrEqual reports whether v is less than or equal to other.
func (v Version) LessThanOrEqual(other Version) bool { return v.Compare(other) <= 0 }

// Equal reports whether v and other denote the same version.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// String renders the version as "major.minor.build.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.major, v.minor, v.build, v.patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
