// Package release provides the Release value object: a single publishable
// build with its version, changelog, optional installer descriptor, and the
// channel (early-access or stable) it was surfaced from.
package release

import (
	"regexp"
	"strings"

	"github.com/caldera-labs/aupdate/internal/domain/version"
)

// sha512Hex matches a lowercase, whitespace-trimmed 128-char hex digest.
var sha512Hex = regexp.MustCompile(`^[0-9a-f]{128}$`)

// FileDescriptor points at a downloadable installer and its expected checksum.
type FileDescriptor struct {
	url    string
	sha512 string
}

// NewFileDescriptor builds a FileDescriptor, lowercasing and trimming the
// checksum the way a feed author's copy-pasted hash might arrive.
func NewFileDescriptor(url, sha512 string) FileDescriptor {
	return FileDescriptor{
		url:    strings.TrimSpace(url),
		sha512: strings.ToLower(strings.TrimSpace(sha512)),
	}
}

// URL returns the installer's download URL.
func (f FileDescriptor) URL() string { return f.url }

// SHA512 returns the expected lowercase-hex SHA-512 digest.
func (f FileDescriptor) SHA512() string { return f.sha512 }

// Valid reports whether the descriptor has a URL and a well-formed checksum.
func (f FileDescriptor) Valid() bool {
	return f.url != "" && sha512Hex.MatchString(f.sha512)
}

// Release is an immutable value: one entry from the feed's release history.
type Release struct {
	ver         version.Version
	changeLog   []string
	file        *FileDescriptor
	earlyAccess bool
}

// New constructs a Release. file may be nil when the feed entry carries no
// installer (e.g. a changelog-only historical entry).
func New(ver version.Version, changeLog []string, file *FileDescriptor, earlyAccess bool) Release {
	lines := make([]string, 0, len(changeLog))

	for _, line := range changeLog {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return Release{
		ver:         ver,
		changeLog:   lines,
		file:        file,
		earlyAccess: earlyAccess,
	}
}

// Version returns the release's version.
func (r Release) Version() version.Version { return r.ver }

// ChangeLog returns the non-empty changelog lines, in feed order.
func (r Release) ChangeLog() []string {
	if r.changeLog == nil {
		return nil
	}

	out := make([]string, len(r.changeLog))
	copy(out, r.changeLog)

	return out
}

// EarlyAccess reports whether this release was sourced from the early-access channel.
func (r Release) EarlyAccess() bool { return r.earlyAccess }

// File returns the release's installer descriptor, or nil if absent.
func (r Release) File() *FileDescriptor { return r.file }

// Installable reports whether the release carries a complete, valid installer
// descriptor. A release that is not installable must never be chosen as new.
func (r Release) Installable() bool {
	return r.file != nil && r.file.Valid()
}

// IsNew reports whether r is a candidate upgrade from current: strictly newer
// and installable.
func (r Release) IsNew(current version.Version) bool {
	return r.Installable() && r.ver.GreaterThan(current)
}
