// Package registry provides the package/release/file domain types: the
// per-project package registry with its current/history split and
// semantic-version-ordered releases.
package registry

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrMalformedVersion indicates a version string that is not strict semver.
var ErrMalformedVersion = errors.New("malformed version")

// Version is a semantic version decomposed for storage: the numeric triple
// plus the pre-release and build strings. Uniqueness within a package is on
// all five components.
type Version struct {
	major int64
	minor int64
	patch int64
	pre   string
	build string
}

// ParseVersion parses a strict semantic version. Partial versions ("1.2"),
// surrounding whitespace, and leading "v" are rejected.
func ParseVersion(s string) (Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	if v.Major() > 1<<62 || v.Minor() > 1<<62 || v.Patch() > 1<<62 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	return Version{
		major: int64(v.Major()),
		minor: int64(v.Minor()),
		patch: int64(v.Patch()),
		pre:   v.Prerelease(),
		build: v.Metadata(),
	}, nil
}

// NewVersion reconstructs a Version from stored components.
func NewVersion(major, minor, patch int64, pre, build string) Version {
	return Version{major: major, minor: minor, patch: patch, pre: pre, build: build}
}

// Major returns the major component.
func (v Version) Major() int64 { return v.major }

// Minor returns the minor component.
func (v Version) Minor() int64 { return v.minor }

// Patch returns the patch component.
func (v Version) Patch() int64 { return v.patch }

// Pre returns the pre-release string, empty for a release version.
func (v Version) Pre() string { return v.pre }

// Build returns the build metadata string.
func (v Version) Build() string { return v.build }

// String renders the version in canonical form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	if v.pre != "" {
		s += "-" + v.pre
	}
	if v.build != "" {
		s += "+" + v.build
	}
	return s
}

// Compare orders versions by semver precedence: the numeric triple, then
// pre-release (a release sorts above any pre-release of the same triple,
// and pre-release identifiers compare per the semver rules). Build
// metadata does not participate in precedence.
func (v Version) Compare(o Version) int {
	a := semver.New(uint64(v.major), uint64(v.minor), uint64(v.patch), v.pre, v.build)
	b := semver.New(uint64(o.major), uint64(o.minor), uint64(o.patch), o.pre, o.build)
	return a.Compare(b)
}
