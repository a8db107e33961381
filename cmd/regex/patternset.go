package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Kris030/regex"
)

// patternFile is the top-level structure of a pattern file:
//
//	pattern "greeting" {
//	  expr = "Hello(wo)+ World!"
//	}
//
//	pattern "ab" {
//	  expr = "(ab)*"
//	  mode = "standard"
//	}
type patternFile struct {
	Patterns []*patternBlock `hcl:"pattern,block"`
}

type patternBlock struct {
	Name string `hcl:"name,label"`
	Expr string `hcl:"expr"`
	Mode string `hcl:"mode,optional"`
}

// patternSet is a compiled pattern file. Names[i] labels Set.Regex(i).
type patternSet struct {
	Names []string
	Set   *regex.Set
}

// loadPatternSet reads and compiles the pattern file at path. Blocks
// without a mode use config.Mode.
func loadPatternSet(path string, config regex.Config) (*patternSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	return parsePatternSet(src, path, config)
}

func parsePatternSet(src []byte, filename string, config regex.Config) (*patternSet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", filename, diags)
	}

	var parsed patternFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode pattern file %s: %w", filename, diags)
	}
	if len(parsed.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file %s defines no patterns", filename)
	}

	ps := &patternSet{}
	seen := make(map[string]bool, len(parsed.Patterns))
	regexes := make([]*regex.Regex, 0, len(parsed.Patterns))
	for _, p := range parsed.Patterns {
		if seen[p.Name] {
			return nil, fmt.Errorf("pattern file %s: duplicate pattern %q", filename, p.Name)
		}
		seen[p.Name] = true

		c := config
		if p.Mode != "" {
			mode, err := regex.ParseMode(p.Mode)
			if err != nil {
				return nil, fmt.Errorf("pattern file %s: pattern %q: %w", filename, p.Name, err)
			}
			c.Mode = mode
		}

		re, err := regex.CompileWithConfig(p.Expr, c)
		if err != nil {
			return nil, fmt.Errorf("pattern file %s: pattern %q: %w", filename, p.Name, err)
		}
		ps.Names = append(ps.Names, p.Name)
		regexes = append(regexes, re)
	}
	ps.Set = regex.NewSetOf(regexes...)
	return ps, nil
}
