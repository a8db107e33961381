// Package automaton provides the compiled state graph shared by the compiler
// and the match engine.
//
// A Graph is an ordered sequence of states. Each state holds an ordered list
// of transitions, and every transition pairs a character Matcher with the
// StateRef it leads to. Index 0 is always the start state. The order of a
// state's transitions is its priority order: the engine takes the first
// transition whose matcher accepts the next input character.
//
// Graphs are produced by a Builder and are read-only once built.
package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// Polarity selects whether a Matcher accepts the characters in its set or
// every character outside of it.
type Polarity uint8

const (
	// Include accepts exactly the characters in the set.
	Include Polarity = iota

	// Exclude accepts every character not in the set.
	Exclude
)

// String returns a human-readable representation of the Polarity.
func (p Polarity) String() string {
	switch p {
	case Include:
		return "Include"
	case Exclude:
		return "Exclude"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Matcher is a predicate over a single character.
//
// Matches(c) is (c in set) XOR (polarity == Exclude). A Matcher is immutable
// and compared by value via Equal.
type Matcher struct {
	polarity Polarity
	set      []rune
}

// NewMatcher creates a matcher over the given characters.
// Panics if set is empty: a matcher always names at least one character.
func NewMatcher(polarity Polarity, set ...rune) Matcher {
	if len(set) == 0 {
		panic("automaton: NewMatcher called with an empty character set")
	}
	return Matcher{
		polarity: polarity,
		set:      slices.Clone(set),
	}
}

// Is returns a matcher accepting exactly c.
func Is(c rune) Matcher {
	return Matcher{polarity: Include, set: []rune{c}}
}

// IsNot returns a matcher accepting every character except c.
func IsNot(c rune) Matcher {
	return Matcher{polarity: Exclude, set: []rune{c}}
}

// Matches reports whether c may be consumed by this matcher.
func (m Matcher) Matches(c rune) bool {
	var in bool
	if len(m.set) == 1 {
		in = m.set[0] == c
	} else {
		in = slices.Contains(m.set, c)
	}
	return in != (m.polarity == Exclude)
}

// Polarity returns the matcher's polarity.
func (m Matcher) Polarity() Polarity {
	return m.polarity
}

// Set returns a copy of the matcher's characters in construction order.
func (m Matcher) Set() []rune {
	return slices.Clone(m.set)
}

// Single returns the matcher's character and true if the set holds exactly
// one character.
func (m Matcher) Single() (rune, bool) {
	if len(m.set) != 1 {
		return 0, false
	}
	return m.set[0], true
}

// Equal reports whether two matchers have the same polarity and the same
// characters in the same order.
func (m Matcher) Equal(o Matcher) bool {
	return m.polarity == o.polarity && slices.Equal(m.set, o.set)
}

// String renders the matcher as a label: "c" for a single included
// character, "[^c]" for a single excluded one, and "[a, b]" / "[^a, b]"
// for multi-character sets.
func (m Matcher) String() string {
	if len(m.set) == 1 {
		if m.polarity == Include {
			return string(m.set[0])
		}
		return "[^" + string(m.set[0]) + "]"
	}

	var sb strings.Builder
	if m.polarity == Include {
		sb.WriteString("[")
	} else {
		sb.WriteString("[^")
	}
	for i, c := range m.set {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune(c)
	}
	sb.WriteString("]")
	return sb.String()
}
