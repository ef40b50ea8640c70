package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The Xtensa Rust toolchain uses a four-field versioning scheme: the first
// three fields track the upstream rustc release, the fourth ("subpatch")
// distinguishes rebuilds of the same rustc version. Users may request either
// the full four-field form or the three-field form, in which case the
// resolver picks the newest matching subpatch.

// Extended version grammar: four dot-separated non-negative integers with no
// leading zeros (except the literal "0").
var reExtended = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

// Abbreviated version grammar: three dot-separated integers, same digit rule.
var reAbbreviated = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

// Kind classifies a user-supplied version string.
type Kind int

const (
	// Invalid means the string matches neither grammar.
	Invalid Kind = iota
	// Abbreviated is the public three-field form (e.g. "1.65.0"). It cannot
	// be installed directly; it must be resolved against the release catalog.
	Abbreviated
	// Extended is the full four-field form (e.g. "1.65.0.1") that uniquely
	// names an installable artifact.
	Extended
)

// Classify reports which grammar the given version string matches.
func Classify(s string) Kind {
	switch {
	case reExtended.MatchString(s):
		return Extended
	case reAbbreviated.MatchString(s):
		return Abbreviated
	default:
		return Invalid
	}
}

// ExtendedVersion is a parsed four-field toolchain version.
type ExtendedVersion struct {
	Major    int
	Minor    int
	Patch    int
	Subpatch int
}

// ParseExtended parses a four-field version string. It fails for anything
// that does not match the extended grammar.
func ParseExtended(s string) (ExtendedVersion, error) {
	m := reExtended.FindStringSubmatch(s)
	if m == nil {
		return ExtendedVersion{}, fmt.Errorf("not an extended version: %q", s)
	}
	// The grammar guarantees each capture is a plain decimal integer.
	fields := make([]int, 4)
	for i := range fields {
		fields[i], _ = strconv.Atoi(m[i+1])
	}
	return ExtendedVersion{
		Major:    fields[0],
		Minor:    fields[1],
		Patch:    fields[2],
		Subpatch: fields[3],
	}, nil
}

// String returns the canonical "major.minor.patch.subpatch" form.
func (v ExtendedVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Subpatch)
}

// Compare orders two extended versions lexicographically by field.
// It returns -1, 0 or 1.
func (v ExtendedVersion) Compare(o ExtendedVersion) int {
	pairs := [4][2]int{
		{v.Major, o.Major},
		{v.Minor, o.Minor},
		{v.Patch, o.Patch},
		{v.Subpatch, o.Subpatch},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MatchesAbbreviated reports whether the first three fields of v equal the
// given abbreviated "major.minor.patch" string.
func (v ExtendedVersion) MatchesAbbreviated(abbrev string) bool {
	m := reAbbreviated.FindStringSubmatch(abbrev)
	if m == nil {
		return false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return v.Major == major && v.Minor == minor && v.Patch == patch
}

// NormalizeTag strips the leading "v" marker and any surrounding quote
// characters from a raw release tag, leaving the bare version string.
// Catalog tags arrive as `v1.65.0.1`, sometimes quoted by the JSON layer.
func NormalizeTag(tag string) string {
	tag = strings.Trim(tag, `"`)
	return strings.TrimPrefix(tag, "v")
}
