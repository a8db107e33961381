package automaton

import (
	"errors"
	"strings"
	"testing"
)

func TestStateRef(t *testing.T) {
	if Index(3) != Index(3) {
		t.Error("Index(3) should equal Index(3)")
	}
	if Index(3) == Index(4) {
		t.Error("Index(3) should not equal Index(4)")
	}
	if Done == Failed {
		t.Error("Done should not equal Failed")
	}
	if _, ok := Done.Index(); ok {
		t.Error("Done.Index() should report false")
	}
	if i, ok := Index(7).Index(); !ok || i != 7 {
		t.Errorf("Index(7).Index() = (%d, %v), want (7, true)", i, ok)
	}

	for _, tt := range []struct {
		ref  StateRef
		want string
	}{
		{Index(2), "Index(2)"},
		{Done, "Done"},
		{Failed, "Failed"},
	} {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBuilder_FinalizeRewritesOnePastEnd(t *testing.T) {
	b := NewBuilder()
	b.AddState(Transition{Is('a'), Index(1)})
	b.AddState(Transition{Is('b'), Index(2)})

	if n := b.Finalize(); n != 1 {
		t.Errorf("Finalize() = %d, want 1", n)
	}
	if n := b.Finalize(); n != 0 {
		t.Errorf("second Finalize() = %d, want 0", n)
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got := g.State(1).Transition(0).Target; got != Done {
		t.Errorf("last target = %v, want Done", got)
	}
	if got := g.State(0).Transition(0).Target; got != Index(1) {
		t.Errorf("first target = %v, want Index(1)", got)
	}
}

func TestBuilder_ValidateRejectsOutOfRange(t *testing.T) {
	b := NewBuilder()
	b.AddState(Transition{Is('a'), Index(5)})

	_, err := b.Build()
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("Build() error = %v, want *BuildError", err)
	}
	if be.State != 0 {
		t.Errorf("BuildError.State = %d, want 0", be.State)
	}
	if !strings.Contains(be.Error(), "target 5") {
		t.Errorf("Error() = %q, want mention of target 5", be.Error())
	}
}

func TestBuilder_AddTransitionAndAccept(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	if err := b.AddTransition(s, Transition{Is('x'), Index(s)}); err != nil {
		t.Fatalf("AddTransition() error: %v", err)
	}
	if err := b.SetAccept(s, true); err != nil {
		t.Fatalf("SetAccept() error: %v", err)
	}
	if err := b.AddTransition(9, Transition{Is('x'), Done}); err == nil {
		t.Error("AddTransition() on missing state should fail")
	}
	if err := b.SetAccept(-1, true); err == nil {
		t.Error("SetAccept() on missing state should fail")
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !g.State(0).IsAccept() {
		t.Error("state 0 should accept")
	}
	if g.State(0).Len() != 1 {
		t.Errorf("state 0 has %d transitions, want 1", g.State(0).Len())
	}
}

func TestBuildError_Error(t *testing.T) {
	tests := []struct {
		err  *BuildError
		want string
	}{
		{&BuildError{Message: "boom", State: 2}, "automaton build error at state 2: boom"},
		{&BuildError{Message: "boom", State: NoState}, "automaton build error: boom"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestGraph_Accessors(t *testing.T) {
	b := NewBuilder()
	b.AddState(Transition{Is('a'), Index(0)}, Transition{IsNot('a'), Done})
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if g.State(1) != nil || g.State(-1) != nil {
		t.Error("State() out of range should return nil")
	}
	if g.Resolve(Done) != nil {
		t.Error("Resolve(Done) should return nil")
	}
	if g.Resolve(Index(0)) != g.State(0) {
		t.Error("Resolve(Index(0)) should return state 0")
	}

	ts := g.State(0).Transitions()
	ts[0].Target = Failed
	if g.State(0).Transition(0).Target != Index(0) {
		t.Error("Transitions() must return a copy")
	}

	want := "0: a -> Index(0); [^a] -> Done;\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGraph_Equal(t *testing.T) {
	build := func(target StateRef) *Graph {
		b := NewBuilder()
		b.AddState(Transition{Is('a'), target})
		g, err := b.Build()
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		return g
	}

	if !build(Done).Equal(build(Done)) {
		t.Error("identical graphs should be equal")
	}
	if build(Done).Equal(build(Index(0))) {
		t.Error("graphs with different targets should differ")
	}
	var nilGraph *Graph
	if nilGraph.Equal(build(Done)) {
		t.Error("nil graph should not equal a non-nil graph")
	}
}
