package semver

import (
	"fmt"
	"regexp"
)

/*
Update constraint recommendation and matching.

A recorded dependency carries an update range relative to the version it was
added at. The range vocabulary is the caret/tilde one: '^1.2.3' accepts any
update below the next major, '~0.3.5' accepts any update below the next minor.
*/

// Supported constraint operators.
const (
	opExact = ""
	opTilde = "~"
	opCaret = "^"
)

// constraintRgxCompiled parses an optional operator followed by an exact triple.
var constraintRgxCompiled *regexp.Regexp

func init() {
	constraintRgxCompiled = regexp.MustCompile(`^\s*(\^|~)?([0-9]+)\.([0-9]+)\.([0-9]+)\s*$`)
}

// RecommendedConstraint returns the update range to record for a freshly
// selected version. Pre-1.0 releases treat the minor segment as the breaking
// boundary and get the up-to-next-minor form, 1.0+ releases treat the major
// segment as the breaking boundary and get the up-to-next-major form.
func RecommendedConstraint(v Version) string {
	if v.Major() == 0 {
		return opTilde + v.String()
	}
	return opCaret + v.String()
}

// Constraint represents a single caret/tilde/exact update range.
type Constraint struct {
	operator string
	ver      Version
	value    string
}

// ParseConstraint constructs a Constraint from its textual form
// (e.g. '^1.2.3', '~0.3.5' or a bare '1.2.3').
func ParseConstraint(value string) (Constraint, error) {
	matches := constraintRgxCompiled.FindStringSubmatch(value)
	if matches == nil {
		return Constraint{}, fmt.Errorf("constraint not supported: %q", value)
	}

	ver, err := newFromSegments(matches[2]+"."+matches[3]+"."+matches[4], matches[2], matches[3], matches[4])
	if err != nil {
		return Constraint{}, fmt.Errorf("unable to parse version: %w", err)
	}

	return Constraint{operator: matches[1], ver: ver, value: value}, nil
}

// Value method returns original unmodified raw value of the constraint.
func (c Constraint) Value() string {
	return c.value
}

// Match validates that the version is inside the constraint range.
func (c Constraint) Match(v Version) bool {
	switch c.operator {
	case opCaret:
		// A caret on a 0.x version keeps the minor boundary, the major
		// segment alone does not mark breaking changes before 1.0.
		if c.ver.major == 0 {
			return v.major == 0 && v.minor == c.ver.minor && !v.Less(c.ver)
		}
		return v.major == c.ver.major && !v.Less(c.ver)
	case opTilde:
		return v.major == c.ver.major && v.minor == c.ver.minor && !v.Less(c.ver)
	case opExact:
		return v.Compare(c.ver) == 0
	}
	return false
}
