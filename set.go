package regex

import (
	"fmt"
	"unicode/utf8"

	"github.com/Kris030/regex/engine"
	"github.com/Kris030/regex/literal"
	"github.com/Kris030/regex/prefilter"
)

// Set is a collection of compiled patterns searched together.
//
// Search over a Set scans the subject once for the prefix literal of any
// member with an Aho-Corasick automaton, then verifies each candidate with
// the members' graphs.
//
// A Set is safe to use concurrently from multiple goroutines.
type Set struct {
	regexes   []*Regex
	prefilter prefilter.Prefilter
}

// NewSet compiles every pattern with config. The error of the first pattern
// that fails to compile is returned wrapped with its index.
//
// Example:
//
//	set, err := regex.NewSet([]string{"foo", "ba+r"}, regex.DefaultConfig())
func NewSet(patterns []string, config Config) (*Set, error) {
	regexes := make([]*Regex, len(patterns))
	for i, p := range patterns {
		re, err := CompileWithConfig(p, config)
		if err != nil {
			return nil, fmt.Errorf("regex: set pattern %d: %w", i, err)
		}
		regexes[i] = re
	}
	return NewSetOf(regexes...), nil
}

// NewSetOf builds a set from already compiled patterns, which may use
// different modes.
func NewSetOf(regexes ...*Regex) *Set {
	lits := make([]literal.Literal, len(regexes))
	for i, re := range regexes {
		lits[i] = re.prefix
	}
	seq := literal.NewSeq(lits...)
	seq.Minimize()

	return &Set{
		regexes:   regexes,
		prefilter: prefilter.NewBuilder(seq).Build(),
	}
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.regexes)
}

// Regex returns the i-th pattern.
func (s *Set) Regex(i int) *Regex {
	return s.regexes[i]
}

// MatchString returns the indices, in ascending order, of the patterns that
// accept subject. It returns nil if none do.
func (s *Set) MatchString(subject string) []int {
	var matched []int
	for i, re := range s.regexes {
		if re.MatchString(subject) {
			matched = append(matched, i)
		}
	}
	return matched
}

// FindStringIndex returns the location of the leftmost match of any pattern
// in subject and the index of that pattern. When several patterns match at
// the leftmost position the lowest index wins. Returns (nil, -1) if no
// pattern matches.
//
// Example:
//
//	set, _ := regex.NewSet([]string{"foo", "ba+r"}, regex.DefaultConfig())
//	loc, i := set.FindStringIndex("xx baaar foo")
//	// loc = [3, 8], i = 1
func (s *Set) FindStringIndex(subject string) (loc []int, pattern int) {
	if len(s.regexes) == 0 {
		return nil, -1
	}

	b := []byte(subject)
	tracker := prefilter.NewTracker(s.prefilter)
	for pos := 0; pos <= len(subject); {
		if tracker.IsActive() {
			cand := tracker.Find(b, pos)
			if cand < 0 {
				return nil, -1
			}
			pos = cand
		}

		for i, re := range s.regexes {
			if n, ok := engine.MatchPrefix(subject[pos:], re.graph); ok {
				if tracker != nil {
					tracker.ConfirmMatch()
				}
				return []int{pos, pos + n}, i
			}
		}

		if pos == len(subject) {
			break
		}
		_, size := utf8.DecodeRuneInString(subject[pos:])
		pos += size
	}
	return nil, -1
}
