package git

import (
	"slices"
	"strings"
)

// sortVersions orders tag names ascending the way `git tag --sort=version:refname`
// does, so both backends agree on which tag is the latest.
func sortVersions(tags []string) {
	slices.SortStableFunc(tags, compareVersions)
}

// compareVersions compares two refnames treating runs of digits as numbers
// and everything else byte by byte. Names that compare equal numerically
// (v1.01 and v1.1) fall back to plain string order.
func compareVersions(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareNumeric(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i == len(a) && j < len(b):
		return -1
	case i < len(a) && j == len(b):
		return 1
	}
	return strings.Compare(a, b)
}

// compareNumeric compares two digit strings of arbitrary length by value.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
