// Package dfa determinizes a Thompson NFA into an automaton.Graph.
//
// Each graph state stands for the epsilon closure of a set of NFA states.
// Because at most one transition of a state accepts any given character,
// the engine's first-match walk over the result never has to choose
// between edges, which makes it exact without backtracking. States whose
// set contains the NFA match state are marked accepting.
package dfa

import (
	"fmt"

	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/internal/conv"
	"github.com/Kris030/regex/internal/sparse"
	"github.com/Kris030/regex/nfa"
)

// DefaultMaxStates is the default limit on determinized states.
const DefaultMaxStates = 10000

// Config controls determinization.
type Config struct {
	// MaxStates caps the number of graph states.
	// Default: 10000
	MaxStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{MaxStates: DefaultMaxStates}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxStates < 1 {
		return &Error{Kind: InvalidConfig, Message: fmt.Sprintf("MaxStates must be positive, got %d", c.MaxStates)}
	}
	return nil
}

// Determinize builds a graph from n by subset construction.
//
// Graph state 0 is the closure of the NFA start state. States are numbered
// in breadth-first discovery order and transitions are listed in ascending
// rune order, so the same NFA always yields the same graph.
func Determinize(n *nfa.NFA, config Config) (*automaton.Graph, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	d := &determinizer{
		nfa:      n,
		config:   config,
		alphabet: n.Alphabet(),
		builder:  automaton.NewBuilder(),
		index:    make(map[string]int),
		set:      sparse.NewSparseSet(conv.IntToUint32(n.States())),
	}
	return d.run()
}

type determinizer struct {
	nfa      *nfa.NFA
	config   Config
	alphabet []rune
	builder  *automaton.Builder
	index    map[string]int   // closure key -> graph state
	sets     [][]nfa.StateID // graph state -> NFA states
	set      *sparse.SparseSet
	stack    []nfa.StateID
}

func (d *determinizer) run() (*automaton.Graph, error) {
	start := d.epsilonClosure([]nfa.StateID{d.nfa.Start()})
	if _, err := d.intern(start); err != nil {
		return nil, err
	}

	// d.sets grows while we walk it: every newly interned state is
	// processed by a later iteration.
	for i := 0; i < len(d.sets); i++ {
		for _, r := range d.alphabet {
			target := d.move(d.sets[i], r)
			if target == nil {
				continue
			}
			j, err := d.intern(target)
			if err != nil {
				return nil, err
			}
			if err := d.builder.AddTransition(i, automaton.Transition{
				Matcher: automaton.Is(r),
				Target:  automaton.Index(j),
			}); err != nil {
				return nil, err
			}
		}
	}

	return d.builder.Build()
}

// intern returns the graph state for the closure in d.set, adding a state
// if the closure has not been seen.
func (d *determinizer) intern(states []nfa.StateID) (int, error) {
	key := d.set.Key()
	if i, ok := d.index[key]; ok {
		return i, nil
	}
	if len(d.sets) >= d.config.MaxStates {
		return 0, &Error{
			Kind:    StateLimitExceeded,
			Message: fmt.Sprintf("more than %d states", d.config.MaxStates),
		}
	}

	i := d.builder.AddState()
	d.index[key] = i
	d.sets = append(d.sets, states)
	if d.containsMatchState(states) {
		if err := d.builder.SetAccept(i, true); err != nil {
			return 0, err
		}
	}
	return i, nil
}

// epsilonClosure computes the set of NFA states reachable from states via
// Split and Epsilon transitions. The result is also left in d.set.
func (d *determinizer) epsilonClosure(states []nfa.StateID) []nfa.StateID {
	d.set.Clear()
	d.stack = d.stack[:0]

	for _, sid := range states {
		if d.set.Insert(uint32(sid)) {
			d.stack = append(d.stack, sid)
		}
	}

	for len(d.stack) > 0 {
		current := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		state := d.nfa.State(current)
		if state == nil {
			continue
		}

		switch state.Kind() {
		case nfa.StateEpsilon:
			d.push(state.Epsilon())
		case nfa.StateSplit:
			left, right := state.Split()
			d.push(left)
			d.push(right)
		}
	}

	out := make([]nfa.StateID, 0, d.set.Len())
	for _, v := range d.set.Sorted() {
		out = append(out, nfa.StateID(v))
	}
	return out
}

func (d *determinizer) push(id nfa.StateID) {
	if id != nfa.InvalidState && d.set.Insert(uint32(id)) {
		d.stack = append(d.stack, id)
	}
}

// move computes the closure of the NFA states reachable from states on r.
// Returns nil if no state consumes r.
func (d *determinizer) move(states []nfa.StateID, r rune) []nfa.StateID {
	var targets []nfa.StateID
	for _, sid := range states {
		state := d.nfa.State(sid)
		if state == nil {
			continue
		}
		if c, next := state.Rune(); next != nfa.InvalidState && c == r {
			targets = append(targets, next)
		}
	}

	if len(targets) == 0 {
		return nil
	}
	return d.epsilonClosure(targets)
}

// containsMatchState returns true if any state in the set is a match state.
func (d *determinizer) containsMatchState(states []nfa.StateID) bool {
	for _, sid := range states {
		if d.nfa.IsMatch(sid) {
			return true
		}
	}
	return false
}
