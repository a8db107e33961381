package literal

import (
	"unicode/utf8"

	"github.com/Kris030/regex/automaton"
)

// DefaultMaxLen caps the length in bytes of an extracted prefix.
const DefaultMaxLen = 64

// Prefix returns the literal every subject accepted by g must start with.
//
// The walk starts at state 0 and follows states that have exactly one
// transition matching exactly one character. It stops at an accepting
// state, at a state with any other shape, at a state already visited, or
// after maxLen bytes (DefaultMaxLen when maxLen <= 0).
//
// The literal is Complete when the walk ends by reaching Done, or at an
// accepting state with no transitions: then the prefix alone decides the
// match.
func Prefix(g *automaton.Graph, maxLen int) Literal {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if g.Len() == 0 {
		return NewLiteral(nil, false)
	}

	var buf []byte
	visited := make(map[int]bool)
	cur := automaton.Index(0)
	for {
		i, ok := cur.Index()
		if !ok {
			return NewLiteral(buf, cur.IsDone())
		}
		s := g.State(i)
		if s == nil || visited[i] {
			return NewLiteral(buf, false)
		}
		visited[i] = true

		if s.IsAccept() {
			return NewLiteral(buf, s.Len() == 0)
		}
		if s.Len() != 1 {
			return NewLiteral(buf, false)
		}
		t := s.Transition(0)
		c, single := t.Matcher.Single()
		// utf8.RuneError also stands for invalid input bytes, which have
		// no fixed encoding.
		if !single || t.Matcher.Polarity() != automaton.Include || c == utf8.RuneError {
			return NewLiteral(buf, false)
		}
		if len(buf)+utf8.RuneLen(c) > maxLen {
			return NewLiteral(buf, false)
		}
		buf = utf8.AppendRune(buf, c)
		cur = t.Target
	}
}

// Prefixes returns a Seq holding the prefix of each graph, in order.
func Prefixes(graphs []*automaton.Graph, maxLen int) *Seq {
	lits := make([]Literal, len(graphs))
	for i, g := range graphs {
		lits[i] = Prefix(g, maxLen)
	}
	return NewSeq(lits...)
}
