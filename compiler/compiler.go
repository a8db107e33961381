// Package compiler turns pattern text into an automaton.Graph.
//
// Compilation parses the pattern once, left to right, then lowers the units
// according to the configured Mode. Malformed patterns and features the
// mode does not support are reported as *syntax.Error values wrapping
// syntax.ErrMalformed or syntax.ErrUnsupported; no partial graph is ever
// returned.
package compiler

import (
	"context"
	"log/slog"

	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/dfa"
	"github.com/Kris030/regex/nfa"
	"github.com/Kris030/regex/syntax"
)

// Compile compiles pattern with the default configuration (ModeCompat).
func Compile(pattern string) (*automaton.Graph, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with the given configuration.
func CompileWithConfig(pattern string, config Config) (*automaton.Graph, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log := config.logger().With("pattern", pattern, "mode", config.Mode.String())

	var (
		g   *automaton.Graph
		err error
	)
	switch config.Mode {
	case ModeStandard:
		g, err = compileStandard(pattern, config)
	default:
		g, err = compileCompatGraph(pattern, config, log)
	}
	if err != nil {
		log.Debug("compilation failed", "error", err)
		return nil, err
	}

	log.Debug("compiled pattern", "states", g.Len())
	return g, nil
}

func compileCompatGraph(pattern string, config Config, log *slog.Logger) (*automaton.Graph, error) {
	re, err := syntax.Parse(pattern, syntax.Compat, config.MaxDepth)
	if err != nil {
		return nil, err
	}
	b, err := compileCompat(re)
	if err != nil {
		return nil, err
	}
	if n := b.Finalize(); n > 0 && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("rewrote one-past-the-end targets to Done", "count", n)
	}
	return b.Build()
}

func compileStandard(pattern string, config Config) (*automaton.Graph, error) {
	re, err := syntax.Parse(pattern, syntax.Standard, config.MaxDepth)
	if err != nil {
		return nil, err
	}
	n, err := nfa.NewCompiler().Compile(re)
	if err != nil {
		return nil, err
	}
	return dfa.Determinize(n, dfa.Config{MaxStates: config.MaxStates})
}
