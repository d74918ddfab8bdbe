package dataset

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the version of the animals.json / encounter.json layout.
const FormatVersion = "v1.0.0"

// IsCompatible reports whether documents written at version can be read by
// this build. Major versions must match; minor and patch may differ.
func IsCompatible(version string) (bool, error) {
	if !semver.IsValid(version) {
		return false, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return semver.Major(version) == semver.Major(FormatVersion), nil
}
