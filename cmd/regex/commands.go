package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kris030/regex"
	"github.com/Kris030/regex/codegen"
	"github.com/Kris030/regex/dot"
)

// runMatch prints one line per subject. The exit status is 1 if any
// subject did not match.
func runMatch(outW, errW io.Writer, args []string) error {
	fs, common := newFlagSet("match", "[flags] PATTERN SUBJECT...", errW)
	find := fs.Bool("find", false, "Search for the leftmost match instead of matching the whole subject.")
	verbose := fs.Bool("v", false, "Print where each run stopped.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return &ExitError{Code: 2, Message: "match needs a pattern and at least one subject"}
	}

	config, err := common.config(errW)
	if err != nil {
		return err
	}
	pattern := fs.Arg(0)
	re, err := regex.CompileWithConfig(pattern, config)
	if err != nil {
		return compileError(pattern, err)
	}

	w := bufio.NewWriter(outW)
	failed := false
	for _, subject := range fs.Args()[1:] {
		if *find {
			loc := re.FindStringIndex(subject)
			if loc == nil {
				failed = true
				fmt.Fprintf(w, "%s\tno match\n", subject)
				continue
			}
			fmt.Fprintf(w, "%s\t[%d:%d]\t%q\n", subject, loc[0], loc[1], subject[loc[0]:loc[1]])
			continue
		}

		res := re.Exec(subject)
		if !res.Matched {
			failed = true
		}
		if *verbose {
			fmt.Fprintf(w, "%s\t%t\tfinal=%s consumed=%d steps=%d\n",
				subject, res.Matched, res.Final, res.Consumed, res.Steps)
		} else {
			fmt.Fprintf(w, "%s\t%t\n", subject, res.Matched)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}

// runDot writes the graph of a single pattern in DOT format.
func runDot(outW, errW io.Writer, args []string) error {
	fs, common := newFlagSet("dot", "[flags] PATTERN", errW)
	output := fs.String("o", "", "Write to this file instead of standard output.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return &ExitError{Code: 2, Message: "dot needs exactly one pattern"}
	}

	config, err := common.config(errW)
	if err != nil {
		return err
	}
	pattern := fs.Arg(0)
	re, err := regex.CompileWithConfig(pattern, config)
	if err != nil {
		return compileError(pattern, err)
	}

	return writeOutput(outW, *output, func(w io.Writer) error {
		if err := dot.Write(w, re.Graph()); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}

// runGen generates Go source for a pattern given on the command line or
// for every pattern in an HCL pattern file.
func runGen(outW, errW io.Writer, args []string) error {
	fs, common := newFlagSet("gen", "[flags] [PATTERN]", errW)
	pkg := fs.String("pkg", "matchers", "Package name of the generated file.")
	name := fs.String("func", "Match", "Function name when generating from a single pattern.")
	file := fs.String("file", "", "Generate one function per pattern block in this HCL file.")
	output := fs.String("o", "", "Write to this file instead of standard output.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}

	config, err := common.config(errW)
	if err != nil {
		return err
	}

	var funcs []codegen.Func
	switch {
	case *file != "" && fs.NArg() == 0:
		ps, err := loadPatternSet(*file, config)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		for i, label := range ps.Names {
			re := ps.Set.Regex(i)
			funcs = append(funcs, codegen.Func{
				Name:    funcName(label),
				Pattern: re.String(),
				Graph:   re.Graph(),
			})
		}
	case *file == "" && fs.NArg() == 1:
		pattern := fs.Arg(0)
		re, err := regex.CompileWithConfig(pattern, config)
		if err != nil {
			return compileError(pattern, err)
		}
		funcs = append(funcs, codegen.Func{Name: *name, Pattern: pattern, Graph: re.Graph()})
	default:
		fs.Usage()
		return &ExitError{Code: 2, Message: "gen needs either one pattern or -file"}
	}

	return writeOutput(outW, *output, func(w io.Writer) error {
		if err := codegen.Generate(w, codegen.Config{Package: *pkg}, funcs...); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return nil
	})
}

// runSet matches each subject against every pattern of an HCL pattern file
// and reports the leftmost match found by any of them.
func runSet(outW, errW io.Writer, args []string) error {
	fs, common := newFlagSet("set", "-file PATTERNS.hcl [flags] SUBJECT...", errW)
	file := fs.String("file", "", "HCL file with pattern blocks. Required.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if *file == "" || fs.NArg() == 0 {
		fs.Usage()
		return &ExitError{Code: 2, Message: "set needs -file and at least one subject"}
	}

	config, err := common.config(errW)
	if err != nil {
		return err
	}
	ps, err := loadPatternSet(*file, config)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	config.Logger.Debug("loaded pattern set", "file", *file, "patterns", ps.Set.Len())

	w := bufio.NewWriter(outW)
	for _, subject := range fs.Args() {
		var names []string
		for _, i := range ps.Set.MatchString(subject) {
			names = append(names, ps.Names[i])
		}
		fmt.Fprintf(w, "%s\tmatches=%s", subject, strings.Join(names, ","))
		if loc, i := ps.Set.FindStringIndex(subject); loc != nil {
			fmt.Fprintf(w, "\tleftmost=%s[%d:%d]", ps.Names[i], loc[0], loc[1])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// writeOutput calls write with outW, or with the named file when path is
// set.
func writeOutput(outW io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(outW)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// funcName turns a pattern label such as "user-id" into "MatchUserId".
func funcName(label string) string {
	var sb strings.Builder
	sb.WriteString("Match")
	upper := true
	for _, c := range label {
		switch {
		case c == '_' || c == '-' || c == '.' || c == ' ':
			upper = true
		case upper:
			sb.WriteString(strings.ToUpper(string(c)))
			upper = false
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
