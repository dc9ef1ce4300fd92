// Package tags holds the helpers used to match editor items against menu
// entries. A tag is an opaque, case-sensitive string.
package tags

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Separator delimits tags in manifest tag strings.
const Separator = ";"

// Set is an unordered collection of tags.
type Set = mapset.Set[string]

// Split turns a semicolon-delimited tag string into a tag sequence.
// No whitespace is trimmed and empty tags are kept, so "a;;b" yields
// ["a", "", "b"] and "" yields [""].
func Split(s string) []string {
	return strings.Split(s, Separator)
}

// Join is the inverse of Split.
func Join(tags []string) string {
	return strings.Join(tags, Separator)
}

// NewSet builds a Set from a tag sequence.
func NewSet(tags ...string) Set {
	s := mapset.New[string]()
	for _, t := range tags {
		s.Put(t)
	}
	return s
}

// Parse is shorthand for NewSet(Split(s)...).
func Parse(s string) Set {
	return NewSet(Split(s)...)
}

// HasAll reports whether every tag in required is present in available.
// An empty required list matches everything.
func HasAll(required []string, available Set) bool {
	for _, t := range required {
		if !available.Has(t) {
			return false
		}
	}
	return true
}

// HasAny reports whether tag is a member of available.
func HasAny(tag string, available Set) bool {
	return available.Has(tag)
}

// Contains reports whether tag occurs in the sequence.
func Contains(seq []string, tag string) bool {
	for _, t := range seq {
		if t == tag {
			return true
		}
	}
	return false
}
