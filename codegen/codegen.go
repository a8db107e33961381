// Package codegen emits Go source for a compiled automaton.Graph.
//
// The generated function is a state machine over a `state` variable: one
// switch case per graph state, one inner case per transition, in the
// graph's transition order. It accepts exactly the subjects engine.Run
// accepts and needs nothing but the standard library at run time.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/Kris030/regex/automaton"
)

// Variable names used in generated code.
const (
	InputName  = "input"
	StateName  = "state"
	OffsetName = "offset"
	CharName   = "c"
	SizeName   = "size"
)

// ErrInvalidConfig is returned when Config names an invalid package or
// function.
var ErrInvalidConfig = errors.New("codegen: invalid config")

// Config holds the configuration for code generation.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
}

// Func describes one generated match function.
type Func struct {
	// Name of the generated func(string) bool.
	Name string

	// Pattern is recorded in the function's doc comment. Optional.
	Pattern string

	Graph *automaton.Graph
}

// Validate checks that Package is a Go identifier.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidConfig, c.Package)
	}
	return nil
}

// Generate writes a gofmt-formatted Go file with one match function per
// Func to w.
func Generate(w io.Writer, config Config, funcs ...Func) error {
	f, err := File(config, funcs...)
	if err != nil {
		return err
	}
	if err := f.Render(w); err != nil {
		return fmt.Errorf("failed to render generated code: %w", err)
	}
	return nil
}

// File builds the jen.File Generate renders.
func File(config Config, funcs ...Func) (*jen.File, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(funcs))
	for _, fn := range funcs {
		if !token.IsIdentifier(fn.Name) {
			return nil, fmt.Errorf("%w: function %q is not an identifier", ErrInvalidConfig, fn.Name)
		}
		if seen[fn.Name] {
			return nil, fmt.Errorf("%w: duplicate function %q", ErrInvalidConfig, fn.Name)
		}
		seen[fn.Name] = true
	}

	f := jen.NewFile(config.Package)
	f.HeaderComment("Code generated by regex gen. DO NOT EDIT.")

	for _, fn := range funcs {
		if fn.Pattern != "" {
			f.Commentf("%s reports whether %s matches %q.", fn.Name, InputName, fn.Pattern)
		}
		f.Func().Id(fn.Name).
			Params(jen.Id(InputName).String()).
			Bool().
			Block(body(fn.Graph)...)
		f.Line()
	}
	return f, nil
}

func body(g *automaton.Graph) []jen.Code {
	if g.Len() == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}

	if !hasTransitions(g) {
		// Only state 0 is reachable.
		if g.State(0).IsAccept() {
			return []jen.Code{jen.Return(jen.Len(jen.Id(InputName)).Op("==").Lit(0))}
		}
		return []jen.Code{jen.Return(jen.False())}
	}

	stateCases := make([]jen.Code, 0, g.Len()+1)
	for i := 0; i < g.Len(); i++ {
		stateCases = append(stateCases, jen.Case(jen.Lit(i)).Block(stateBlock(g.State(i))...))
	}
	stateCases = append(stateCases, jen.Default().Block(jen.Return(jen.False())))

	return []jen.Code{
		jen.Id(StateName).Op(":=").Lit(0),
		jen.Id(OffsetName).Op(":=").Lit(0),
		jen.For().Block(
			jen.If(jen.Id(OffsetName).Op(">=").Len(jen.Id(InputName))).Block(
				jen.Return(acceptExpr(g)),
			),
			jen.List(jen.Id(CharName), jen.Id(SizeName)).Op(":=").
				Qual("unicode/utf8", "DecodeRuneInString").
				Call(jen.Id(InputName).Index(jen.Id(OffsetName), jen.Empty())),
			jen.Id(OffsetName).Op("+=").Id(SizeName),
			jen.Line(),
			jen.Switch(jen.Id(StateName)).Block(stateCases...),
		),
	}
}

// stateBlock tries the transitions of s in order; the first match wins.
func stateBlock(s *automaton.State) []jen.Code {
	if s.Len() == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}

	cases := make([]jen.Code, 0, s.Len())
	for _, t := range s.Transitions() {
		cases = append(cases, jen.Case(condition(t.Matcher)).Block(target(t.Target)...))
	}
	return []jen.Code{
		jen.Switch().Block(cases...),
		jen.Return(jen.False()),
	}
}

// condition renders the matcher as a boolean expression over c.
func condition(m automaton.Matcher) *jen.Statement {
	op, join := "==", "||"
	if m.Polarity() == automaton.Exclude {
		op, join = "!=", "&&"
	}

	set := m.Set()
	cond := jen.Id(CharName).Op(op).LitRune(set[0])
	for _, r := range set[1:] {
		cond = cond.Op(join).Id(CharName).Op(op).LitRune(r)
	}
	return cond
}

func target(ref automaton.StateRef) []jen.Code {
	if i, ok := ref.Index(); ok {
		return []jen.Code{
			jen.Id(StateName).Op("=").Lit(i),
			jen.Continue(),
		}
	}
	return []jen.Code{jen.Return(jen.Lit(ref.IsDone()))}
}

// acceptExpr is true when the current state accepts at end of input.
func acceptExpr(g *automaton.Graph) *jen.Statement {
	var accepting []int
	for i := 0; i < g.Len(); i++ {
		if g.State(i).IsAccept() {
			accepting = append(accepting, i)
		}
	}
	if len(accepting) == 0 {
		return jen.False()
	}

	expr := jen.Id(StateName).Op("==").Lit(accepting[0])
	for _, i := range accepting[1:] {
		expr = expr.Op("||").Id(StateName).Op("==").Lit(i)
	}
	return expr
}

func hasTransitions(g *automaton.Graph) bool {
	for i := 0; i < g.Len(); i++ {
		if g.State(i).Len() > 0 {
			return true
		}
	}
	return false
}
