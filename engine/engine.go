// Package engine runs subjects through a compiled automaton.Graph.
//
// Execution starts at Index(0) and examines one character per step. The
// first transition whose matcher accepts the character is taken and the
// character is consumed. Reaching Done accepts immediately, even with input
// left over. Running out of input accepts only when the current state is
// an accepting state. Any other stop rejects.
//
// Every run is O(n) in the subject length and allocates nothing.
package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/Kris030/regex/automaton"
)

// Result describes a single run.
type Result struct {
	// Matched reports whether the subject was accepted.
	Matched bool

	// Final is the reference the run stopped on: Done, Failed, or the Index
	// of an accepting state when the subject was exhausted there.
	Final automaton.StateRef

	// Consumed is the number of bytes consumed before the run stopped.
	Consumed int

	// Steps counts the characters examined. It never exceeds the number of
	// characters in the subject.
	Steps int
}

// Run reports whether g accepts subject.
func Run(subject string, g *automaton.Graph) bool {
	return Exec(subject, g).Matched
}

// Exec runs subject through g and returns the details of the run.
//
// A nil graph or a graph with no states rejects every subject. A
// transition to a missing state means the graph was not built by
// automaton.Builder and panics.
func Exec(subject string, g *automaton.Graph) Result {
	var res Result
	if g == nil || g.Len() == 0 {
		res.Final = automaton.Failed
		return res
	}

	cur := automaton.Index(0)
	for {
		s := state(g, cur)
		if res.Consumed >= len(subject) {
			if !s.IsAccept() {
				cur = automaton.Failed
			}
			break
		}

		c, size := utf8.DecodeRuneInString(subject[res.Consumed:])
		res.Steps++
		next, ok := step(s, c)
		if !ok || next.IsFailed() {
			cur = automaton.Failed
			break
		}
		res.Consumed += size
		cur = next
		if next.Kind() != automaton.RefIndex {
			break
		}
	}

	res.Final = cur
	res.Matched = !cur.IsFailed()
	return res
}

// MatchPrefix returns the end of the longest prefix of subject accepted by
// g. A run that reaches Done ends the prefix right after the character that
// led there; otherwise the prefix ends at the last accepting state visited.
func MatchPrefix(subject string, g *automaton.Graph) (end int, ok bool) {
	if g == nil || g.Len() == 0 {
		return 0, false
	}

	end = -1
	pos := 0
	cur := automaton.Index(0)
	for {
		s := state(g, cur)
		if s.IsAccept() {
			end = pos
		}
		if pos >= len(subject) {
			break
		}

		c, size := utf8.DecodeRuneInString(subject[pos:])
		next, found := step(s, c)
		if !found || next.IsFailed() {
			break
		}
		pos += size
		if next.IsDone() {
			return pos, true
		}
		cur = next
	}
	return end, end >= 0
}

func state(g *automaton.Graph, ref automaton.StateRef) *automaton.State {
	s := g.Resolve(ref)
	if s == nil {
		panic(fmt.Sprintf("engine: %v does not name a state of a %d-state graph", ref, g.Len()))
	}
	return s
}

// step returns the target of the first transition of s accepting c.
func step(s *automaton.State, c rune) (automaton.StateRef, bool) {
	for j := 0; j < s.Len(); j++ {
		t := s.Transition(j)
		if t.Matcher.Matches(c) {
			return t.Target, true
		}
	}
	return automaton.Failed, false
}
