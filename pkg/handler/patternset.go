package handler

import (
	"hash/fnv"
	"regexp"

	"github.com/arthur-debert/resolvr/pkg/errors"
)

// PatternSet is an immutable, ordered collection of compiled regular
// expressions that remembers its source strings. Matching uses unanchored
// search semantics; identity (Equal, Hash) is defined over the ordered
// source strings only, because the compiled form has no usable equality.
//
// The zero value is an empty set, which matches nothing.
type PatternSet struct {
	sources  []string
	compiled []*regexp.Regexp
}

// NewPatternSet compiles the given pattern strings into a set, preserving
// order. It fails with an INVALID_PATTERN error naming the offending
// pattern if any string does not compile.
func NewPatternSet(patterns ...string) (PatternSet, error) {
	set := PatternSet{
		sources:  make([]string, 0, len(patterns)),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return PatternSet{}, errors.Wrapf(err, errors.ErrInvalidPattern,
				"invalid pattern %q", p).WithDetail("pattern", p)
		}
		set.sources = append(set.sources, p)
		set.compiled = append(set.compiled, re)
	}
	return set, nil
}

// Matches reports whether any pattern in the set finds a match in
// candidate.
func (s PatternSet) Matches(candidate string) bool {
	for _, re := range s.compiled {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}

// Sources returns a copy of the ordered pattern source strings.
func (s PatternSet) Sources() []string {
	out := make([]string, len(s.sources))
	copy(out, s.sources)
	return out
}

// Len returns the number of patterns in the set.
func (s PatternSet) Len() int {
	return len(s.sources)
}

// Equal reports whether both sets hold the same pattern sources in the
// same order.
func (s PatternSet) Equal(other PatternSet) bool {
	if len(s.sources) != len(other.sources) {
		return false
	}
	for i, src := range s.sources {
		if src != other.sources[i] {
			return false
		}
	}
	return true
}

// Hash returns a stable hash of the ordered pattern sources. Equal sets
// hash identically.
func (s PatternSet) Hash() uint64 {
	d := fnv.New64a()
	for _, src := range s.sources {
		_, _ = d.Write([]byte(src))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
