package automaton

import "fmt"

// Builder constructs a Graph state by state.
//
// Targets may point one past the last state while building: the compiler
// allocates "the next state" before it knows whether one will exist.
// Finalize rewrites every such target to Done.
type Builder struct {
	states []State
}

// NewBuilder creates a new graph builder with default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new graph builder with specified initial capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
	}
}

// Len returns the current number of states.
func (b *Builder) Len() int {
	return len(b.states)
}

// AddState appends a state with the given transitions and returns its index.
// The transitions slice is copied.
func (b *Builder) AddState(transitions ...Transition) int {
	id := len(b.states)
	trans := make([]Transition, len(transitions))
	copy(trans, transitions)
	b.states = append(b.states, State{transitions: trans})
	return id
}

// AddTransition appends a transition to an existing state.
func (b *Builder) AddTransition(state int, t Transition) error {
	if state < 0 || state >= len(b.states) {
		return &BuildError{Message: "state index out of bounds", State: state}
	}
	b.states[state].transitions = append(b.states[state].transitions, t)
	return nil
}

// SetAccept marks or unmarks a state as accepting at end of input.
func (b *Builder) SetAccept(state int, accept bool) error {
	if state < 0 || state >= len(b.states) {
		return &BuildError{Message: "state index out of bounds", State: state}
	}
	b.states[state].accept = accept
	return nil
}

// Finalize rewrites every target equal to Index(Len()) into Done and returns
// the number of rewritten targets. It is idempotent.
func (b *Builder) Finalize() int {
	end := Index(len(b.states))
	n := 0
	for i := range b.states {
		ts := b.states[i].transitions
		for j := range ts {
			if ts[j].Target == end {
				ts[j].Target = Done
				n++
			}
		}
	}
	return n
}

// Validate checks that every Index target is within [0, Len()).
// Call Finalize first: a one-past-the-end target is reported as invalid.
func (b *Builder) Validate() error {
	for i := range b.states {
		for j, t := range b.states[i].transitions {
			idx, ok := t.Target.Index()
			if !ok {
				continue
			}
			if idx < 0 || idx >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid transition %d target %d", j, idx),
					State:   i,
				}
			}
		}
	}
	return nil
}

// Build finalizes, validates and returns the graph.
// The builder must not be used afterwards.
func (b *Builder) Build() (*Graph, error) {
	b.Finalize()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	g := &Graph{states: b.states}
	b.states = nil
	return g, nil
}
