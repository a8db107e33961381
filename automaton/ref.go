package automaton

import "strconv"

// RefKind identifies the variant of a StateRef.
type RefKind uint8

const (
	// RefIndex refers to an entry in the graph's state sequence.
	RefIndex RefKind = iota

	// RefFailed signals that no transition is viable.
	// The compiler never stores it as an edge target; it is reserved for
	// engines that want an explicit reject edge.
	RefFailed

	// RefDone is the terminal accepting marker. It is not an index.
	RefDone
)

// String returns a human-readable representation of the RefKind.
func (k RefKind) String() string {
	switch k {
	case RefIndex:
		return "Index"
	case RefFailed:
		return "Failed"
	case RefDone:
		return "Done"
	default:
		return "RefKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// StateRef is a transition target or an engine position: either an index
// into the state sequence, Failed, or Done.
//
// StateRef is a comparable value type; two references are equal iff they
// have the same kind and, for RefIndex, the same index.
type StateRef struct {
	kind  RefKind
	index int
}

var (
	// Failed is the reject marker.
	Failed = StateRef{kind: RefFailed}

	// Done is the accept marker.
	Done = StateRef{kind: RefDone}
)

// Index returns a reference to the i-th state.
func Index(i int) StateRef {
	return StateRef{kind: RefIndex, index: i}
}

// Kind returns the variant of the reference.
func (r StateRef) Kind() RefKind {
	return r.kind
}

// Index returns the referenced state index and true for RefIndex references.
// Returns (0, false) for Failed and Done.
func (r StateRef) Index() (int, bool) {
	if r.kind != RefIndex {
		return 0, false
	}
	return r.index, true
}

// IsDone reports whether r is the Done marker.
func (r StateRef) IsDone() bool {
	return r.kind == RefDone
}

// IsFailed reports whether r is the Failed marker.
func (r StateRef) IsFailed() bool {
	return r.kind == RefFailed
}

// String returns "Index(i)", "Failed" or "Done".
func (r StateRef) String() string {
	if r.kind == RefIndex {
		return "Index(" + strconv.Itoa(r.index) + ")"
	}
	return r.kind.String()
}
