// Package version compares dotted/hyphenated release versions.
//
// Versions are compared as tuples of numbers: "1.0.7-20251223" is
// (1, 0, 7, 20251223). Missing and non-numeric components count as 0, so a
// malformed version never raises and a trailing build stamp never makes a
// build look older than its release.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1 if a < b, 0 if a == b and 1 if a > b.
func Compare(a, b string) int {
	pa, pb := components(a), components(b)
	n := max(len(pa), len(pb))
	for i := range n {
		x, y := at(pa, i), at(pb, i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// IsNewer reports whether latest is strictly newer than current.
func IsNewer(current, latest string) bool {
	return Compare(current, latest) < 0
}

// Normalize returns the canonical form of a release tag: the leading "v" is
// dropped and short semver forms are expanded ("v1.2" becomes "1.2.0").
// Tags that are not semver are returned trimmed.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	v, err := semver.NewVersion(tag)
	if err != nil {
		return strings.TrimPrefix(strings.TrimPrefix(tag, "v"), "V")
	}
	return v.String()
}

func components(v string) []int64 {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")
	if v == "" {
		return nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == '.' || r == '-' || r == '+'
	})
	out := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			n = 0
		}
		out[i] = n
	}
	return out
}

func at(p []int64, i int) int64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}
