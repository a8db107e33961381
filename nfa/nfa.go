// Package nfa provides a Thompson NFA built from a parsed pattern.
//
// Each unit of the pattern compiles to a fragment: an entry state and one
// dangling exit that is patched to the next fragment. Quantifiers wrap a
// fragment with Split states, so one-or-more, zero-or-more and optional all
// apply to the whole unit, groups included. The dfa package determinizes
// the result into an automaton.Graph.
package nfa

import (
	"fmt"
	"slices"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which transitions are valid.
type StateKind uint8

const (
	// StateMatch represents a match state (accepting state)
	StateMatch StateKind = iota

	// StateRune consumes one character equal to the state's rune
	StateRune

	// StateSplit represents an epsilon transition to 2 states.
	// Left is tried first: it is the repeat/enter branch of a quantifier.
	StateSplit

	// StateEpsilon represents an epsilon transition to 1 state
	StateEpsilon
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateRune:
		return "Rune"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State represents a single NFA state with its transitions.
// The state's kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	r    rune
	next StateID // Rune/Epsilon target

	left, right StateID // Split targets
}

// ID returns the state's unique identifier.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type.
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is a match state.
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Rune returns the character and target of a Rune state.
// Returns (0, InvalidState) for other kinds.
func (s *State) Rune() (rune, StateID) {
	if s.kind == StateRune {
		return s.r, s.next
	}
	return 0, InvalidState
}

// Split returns the two target states for Split states.
// Returns (InvalidState, InvalidState) for non-Split states.
func (s *State) Split() (left, right StateID) {
	if s.kind == StateSplit {
		return s.left, s.right
	}
	return InvalidState, InvalidState
}

// Epsilon returns the target state for Epsilon states.
// Returns InvalidState for non-Epsilon states.
func (s *State) Epsilon() StateID {
	if s.kind == StateEpsilon {
		return s.next
	}
	return InvalidState
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateRune:
		return fmt.Sprintf("State(%d, Rune %q -> %d)", s.id, s.r, s.next)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.left, s.right)
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> %d)", s.id, s.next)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA represents a compiled Thompson NFA.
type NFA struct {
	states []State
	start  StateID

	// alphabet holds every rune a Rune state consumes, sorted and unique
	alphabet []rune
}

// Start returns the starting state ID of the NFA.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is a match state.
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA.
func (n *NFA) States() int {
	return len(n.states)
}

// Alphabet returns the sorted, de-duplicated runes consumed by the NFA.
func (n *NFA) Alphabet() []rune {
	return slices.Clone(n.alphabet)
}

// String returns a human-readable representation of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, alphabet: %q}", len(n.states), n.start, string(n.alphabet))
}
