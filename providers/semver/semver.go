/*
Package semver provides semantic version extraction, ordering and update
constraint recommendation over raw tag listing text.

Usage:
	todo:
*/
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrNoVersions is returned when a maximum is demanded of an empty version list.
	ErrNoVersions = errors.New("no versions found")
)

// semverConfig is used to store the extraction parser configuration.
type semverConfig struct {
	versionRgx         string         // whitespace bounded version triple regexp (e.g. '1.2.3 ')
	versionRgxCompiled *regexp.Regexp // compiled triple regexp
	exactRgxCompiled   *regexp.Regexp // compiled full-string triple regexp
}

// semverCfg is a global extraction parser configuration.
var semverCfg semverConfig

// Extraction parser config initialization and expressions compiling.
func init() {
	// The trailing whitespace class is part of the contract: a triple at the
	// very end of the input, with no boundary character after it, does not match.
	semverCfg.versionRgx = `(([0-9]+)\.([0-9]+)\.([0-9]+))\s`
	semverCfg.versionRgxCompiled = regexp.MustCompile(semverCfg.versionRgx)
	semverCfg.exactRgxCompiled = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)
}

// Version represents a fixed 'major.minor.patch' version parsed from tag text.
type Version struct {
	major, minor, patch int
	value               string
}

// Major method returns integer value of the major version segment (e.g. '?.0.0')
func (v Version) Major() int {
	return v.major
}

// Minor method returns integer value of the minor version segment (e.g. '0.?.0')
func (v Version) Minor() int {
	return v.minor
}

// Patch method returns integer value of the patch version segment (e.g. '0.0.?')
func (v Version) Patch() int {
	return v.patch
}

// Value method returns original unmodified raw value of the version.
func (v Version) Value() string {
	return v.value
}

// String renders the canonical dotted form (leading zeros from the source text are dropped).
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Compare orders versions by major, then minor, then patch segment, each
// compared as an integer. It returns -1 when v is lower than o, 0 when both
// are equal and 1 when v is higher.
func (v Version) Compare(o Version) int {
	switch {
	case v.major != o.major:
		return compareInt(v.major, o.major)
	case v.minor != o.minor:
		return compareInt(v.minor, o.minor)
	case v.patch != o.patch:
		return compareInt(v.patch, o.patch)
	}
	return 0
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	return 1
}

// Parse constructs a Version from an exact 'major.minor.patch' string.
func Parse(value string) (Version, error) {
	matches := semverCfg.exactRgxCompiled.FindStringSubmatch(value)
	if matches == nil {
		return Version{}, fmt.Errorf("version '%s' is not supported", value)
	}
	return newFromSegments(value, matches[1], matches[2], matches[3])
}

// ExtractAll scans text for every non-overlapping 'digits.digits.digits' run
// followed by a whitespace character and returns the parsed versions in first
// occurrence order. Text without a single qualifying substring yields an
// empty slice, never an error. The result is unsorted, callers sort or select
// explicitly.
func ExtractAll(text string) []Version {
	matches := semverCfg.versionRgxCompiled.FindAllStringSubmatch(text, -1)
	result := make([]Version, 0, len(matches))
	for _, m := range matches {
		v, err := newFromSegments(m[1], m[2], m[3], m[4])
		if err != nil {
			// Segment overflows the host integer width, skip the match.
			continue
		}
		result = append(result, v)
	}
	return result
}

// Latest returns the maximal version under the segment-wise ordering. It
// fails with ErrNoVersions on an empty slice: a repository without a single
// parseable tag cannot be recorded as a versioned dependency. Equal maxima
// are interchangeable, any one of them may be returned.
func Latest(versions []Version) (Version, error) {
	if len(versions) == 0 {
		return Version{}, ErrNoVersions
	}
	max := versions[0]
	for _, v := range versions[1:] {
		if max.Less(v) {
			max = v
		}
	}
	return max, nil
}

// newFromSegments parses the three captured segment strings as decimal
// integers. Leading zeros are accepted (e.g. '01' is 1).
func newFromSegments(value, major, minor, patch string) (Version, error) {
	sv := Version{value: value}

	var temp int64
	var err error
	if temp, err = strconv.ParseInt(major, 10, 0); err != nil {
		return Version{}, fmt.Errorf("segment parse error: %s", err)
	}
	sv.major = int(temp)
	if temp, err = strconv.ParseInt(minor, 10, 0); err != nil {
		return Version{}, fmt.Errorf("segment parse error: %s", err)
	}
	sv.minor = int(temp)
	if temp, err = strconv.ParseInt(patch, 10, 0); err != nil {
		return Version{}, fmt.Errorf("segment parse error: %s", err)
	}
	sv.patch = int(temp)

	return sv, nil
}
