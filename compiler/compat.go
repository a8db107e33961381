package compiler

import (
	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/syntax"
)

// compatCompiler emits states in the order the legacy single-pass
// compiler did, one state per literal plus one state per group.
type compatCompiler struct {
	pattern string
	builder *automaton.Builder
}

func compileCompat(re *syntax.Regexp) (*automaton.Builder, error) {
	c := &compatCompiler{
		pattern: re.Pattern,
		builder: automaton.NewBuilder(),
	}
	if err := c.seq(re.Units, true); err != nil {
		return nil, err
	}
	return c.builder, nil
}

// seq emits the units of one sequence. top is true for the pattern's
// outermost sequence.
func (c *compatCompiler) seq(units []*syntax.Node, top bool) error {
	for i, n := range units {
		if err := c.unit(n, top && i == len(units)-1); err != nil {
			return err
		}
	}
	return nil
}

// unit emits the state for n.
//
// A group first emits the states of its contents; its own state then
// matches the group's head character and, for `+`, loops back to the state
// after the group's first state. The next state is Index(len+1), or Done
// when n is the last unit of the pattern and carries no quantifier. A `+`
// leaves through its fallback character, or through any other character
// when the pattern ends at the `+`.
func (c *compatCompiler) unit(n *syntax.Node, last bool) error {
	self := c.builder.Len()
	ch := n.Rune
	if n.Kind == syntax.KindGroup {
		if err := c.seq(n.Sub, false); err != nil {
			return err
		}
		self++
		ch = n.Head
	}

	next := automaton.Index(c.builder.Len() + 1)
	if last && n.Quant == syntax.QuantNone {
		next = automaton.Done
	}

	switch n.Quant {
	case syntax.QuantNone:
		c.builder.AddState(automaton.Transition{Matcher: automaton.Is(ch), Target: next})
		return nil

	case syntax.QuantOnePlus:
		exit := automaton.Transition{Matcher: automaton.IsNot(ch), Target: automaton.Done}
		if n.HasFallback {
			exit = automaton.Transition{Matcher: automaton.Is(n.Fallback), Target: next}
		}
		c.builder.AddState(
			automaton.Transition{Matcher: automaton.Is(ch), Target: automaton.Index(self)},
			exit,
		)
		return nil

	default:
		return syntax.NewError(syntax.ErrUnsupportedQuantifier, c.pattern, n.Pos)
	}
}
