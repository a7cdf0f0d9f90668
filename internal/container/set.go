// Package container holds small generic collection types used by the
// grammar analyzer. It deliberately does not attempt to be a general
// collections library; it grows only the operations the analyzer needs.
package container

import (
	"sort"
	"strings"
)

// StringSet is an unordered collection of distinct strings that also
// supports deterministic iteration via Ordered.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from the given elements.
func NewStringSet(elements ...string) StringSet {
	s := make(StringSet, len(elements))
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add inserts element into the set. Has no effect if already present.
func (s StringSet) Add(element string) {
	s[element] = struct{}{}
}

// AddAll inserts every element of other into s.
func (s StringSet) AddAll(other StringSet) {
	for e := range other {
		s.Add(e)
	}
}

// Has reports whether element is in the set.
func (s StringSet) Has(element string) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Copy returns a shallow duplicate of s.
func (s StringSet) Copy() StringSet {
	c := make(StringSet, len(s))
	c.AddAll(s)
	return c
}

// Ordered returns the elements of s sorted lexically. Used anywhere a
// diagnostic or rendered table needs deterministic output.
func (s StringSet) Ordered() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether s and other contain exactly the same elements.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

// String renders the set in sorted order, e.g. "{A, B, C}".
func (s StringSet) String() string {
	return "{" + strings.Join(s.Ordered(), ", ") + "}"
}
