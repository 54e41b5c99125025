package version

import "errors"

// ErrInvalidVersion is returned when a version string has an invalid format.
var ErrInvalidVersion = errors.New("invalid version format")
