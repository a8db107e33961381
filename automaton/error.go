package automaton

import "fmt"

// NoState is the State field of a BuildError that is not tied to one state.
const NoState = -1

// BuildError represents an error during graph construction via the Builder.
type BuildError struct {
	Message string
	State   int
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != NoState {
		return fmt.Sprintf("automaton build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("automaton build error: %s", e.Message)
}
