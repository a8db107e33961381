package nfa

import (
	"fmt"

	"github.com/Kris030/regex/syntax"
)

// Compiler compiles parsed patterns into Thompson NFAs.
type Compiler struct {
	builder *Builder
}

// NewCompiler creates a new NFA compiler.
func NewCompiler() *Compiler {
	return &Compiler{builder: NewBuilder()}
}

// Compile compiles a parsed pattern into an NFA whose single match state
// is reached only after every unit has been consumed.
func (c *Compiler) Compile(re *syntax.Regexp) (*NFA, error) {
	c.builder = NewBuilder()

	// Returns (start, end) state IDs for the compiled fragment
	start, end, err := c.compileSeq(re.Units)
	if err != nil {
		return nil, &CompileError{Pattern: re.Pattern, Err: err}
	}

	matchID := c.builder.AddMatch()
	if err := c.builder.Patch(end, matchID); err != nil {
		return nil, &CompileError{
			Pattern: re.Pattern,
			Err:     fmt.Errorf("failed to connect to match state: %w", err),
		}
	}

	c.builder.SetStart(start)

	n, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{Pattern: re.Pattern, Err: err}
	}
	return n, nil
}

// compileSeq compiles a sequence of units.
// The 'end' state is an Epsilon or Rune state that needs to be patched to
// continue the automaton.
func (c *Compiler) compileSeq(units []*syntax.Node) (start, end StateID, err error) {
	if len(units) == 0 {
		return c.compileEmptyMatch()
	}

	start, end, err = c.compileNode(units[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}

	// Chain the rest
	for _, u := range units[1:] {
		nextStart, nextEnd, err := c.compileNode(u)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if err := c.builder.Patch(end, nextStart); err != nil {
			return InvalidState, InvalidState, err
		}
		end = nextEnd
	}

	return start, end, nil
}

// compileNode compiles one unit and applies its quantifier.
func (c *Compiler) compileNode(n *syntax.Node) (start, end StateID, err error) {
	switch n.Kind {
	case syntax.KindLiteral:
		id := c.builder.AddRune(n.Rune, InvalidState)
		start, end = id, id
	case syntax.KindGroup:
		start, end, err = c.compileSeq(n.Sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
	default:
		return InvalidState, InvalidState, fmt.Errorf("%w: unknown unit kind %d", ErrCompilation, n.Kind)
	}

	switch n.Quant {
	case syntax.QuantNone:
		return start, end, nil
	case syntax.QuantOnePlus:
		return c.compilePlus(start, end)
	case syntax.QuantZeroPlus:
		return c.compileStar(start, end)
	case syntax.QuantOptional:
		return c.compileQuest(start, end)
	default:
		return InvalidState, InvalidState, fmt.Errorf("%w: unknown quantifier %v", ErrCompilation, n.Quant)
	}
}

// compileStar compiles a* (zero or more)
func (c *Compiler) compileStar(subStart, subEnd StateID) (start, end StateID, err error) {
	// split -> [sub, end]
	// sub -> split (loop back)
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)

	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}

	return split, end, nil
}

// compilePlus compiles a+ (one or more)
func (c *Compiler) compilePlus(subStart, subEnd StateID) (start, end StateID, err error) {
	// Must match at least once
	// sub -> split -> [sub, end]
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)

	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}

	return subStart, end, nil
}

// compileQuest compiles a? (zero or one)
func (c *Compiler) compileQuest(subStart, subEnd StateID) (start, end StateID, err error) {
	// Either match sub or skip
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)

	if err := c.builder.Patch(subEnd, end); err != nil {
		return InvalidState, InvalidState, err
	}

	return split, end, nil
}

// compileEmptyMatch compiles a fragment that consumes nothing.
func (c *Compiler) compileEmptyMatch() (start, end StateID, err error) {
	id := c.builder.AddEpsilon(InvalidState)
	return id, id, nil
}
