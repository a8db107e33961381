package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// Transition is one edge of an automaton state: a matcher and the state the
// engine moves to after consuming a character the matcher accepts.
type Transition struct {
	Matcher Matcher
	Target  StateRef
}

// Equal reports whether two transitions have equal matchers and targets.
func (t Transition) Equal(o Transition) bool {
	return t.Target == o.Target && t.Matcher.Equal(o.Matcher)
}

// String returns "matcher -> target".
func (t Transition) String() string {
	return t.Matcher.String() + " -> " + t.Target.String()
}

// State is a single automaton state.
//
// Accept marks a state on which the engine may stop when the subject is
// exhausted. Graphs built in compatibility mode never set it: their only
// accept condition is reaching Done.
type State struct {
	transitions []Transition
	accept      bool
}

// Len returns the number of transitions.
func (s *State) Len() int {
	return len(s.transitions)
}

// Transition returns the j-th transition in priority order.
func (s *State) Transition(j int) Transition {
	return s.transitions[j]
}

// Transitions returns a copy of the state's transitions in priority order.
func (s *State) Transitions() []Transition {
	return slices.Clone(s.transitions)
}

// IsAccept reports whether the state accepts at end of input.
func (s *State) IsAccept() bool {
	return s.accept
}

// Graph is a compiled automaton. State 0 is the start state.
//
// A Graph is read-only after construction and is safe to share between
// goroutines.
type Graph struct {
	states []State
}

// Len returns the number of states.
func (g *Graph) Len() int {
	return len(g.states)
}

// State returns the state with the given index.
// Returns nil if the index is out of range.
func (g *Graph) State(i int) *State {
	if i < 0 || i >= len(g.states) {
		return nil
	}
	return &g.states[i]
}

// Resolve returns the state a reference points to.
// Returns nil for Done, Failed and out-of-range indices.
func (g *Graph) Resolve(r StateRef) *State {
	i, ok := r.Index()
	if !ok {
		return nil
	}
	return g.State(i)
}

// Equal reports whether two graphs are structurally identical.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if len(g.states) != len(o.states) {
		return false
	}
	for i := range g.states {
		a, b := &g.states[i], &o.states[i]
		if a.accept != b.accept {
			return false
		}
		if !slices.EqualFunc(a.transitions, b.transitions, Transition.Equal) {
			return false
		}
	}
	return true
}

// String returns a multi-line listing of states and transitions.
func (g *Graph) String() string {
	var sb strings.Builder
	for i := range g.states {
		s := &g.states[i]
		fmt.Fprintf(&sb, "%d", i)
		if s.accept {
			sb.WriteString(" (accept)")
		}
		sb.WriteString(":")
		for _, t := range s.transitions {
			sb.WriteString(" ")
			sb.WriteString(t.String())
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
