// Command regex compiles patterns and runs subjects through them.
//
// Usage:
//
//	regex match [flags] PATTERN SUBJECT...
//	regex dot   [flags] PATTERN
//	regex gen   [flags] [PATTERN]
//	regex set   [flags] -file PATTERNS.hcl SUBJECT...
//
// Run "regex COMMAND -h" for the flags of a command.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Use a minimal logger until the command configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches to the subcommand named by args[0].
func run(outW, errW io.Writer, args []string) error {
	if len(args) == 0 {
		printUsage(outW)
		return &ExitError{Code: 2, Message: "missing command"}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "match":
		return runMatch(outW, errW, rest)
	case "dot":
		return runDot(outW, errW, rest)
	case "gen":
		return runGen(outW, errW, rest)
	case "set":
		return runSet(outW, errW, rest)
	case "help", "-h", "-help", "--help":
		printUsage(outW)
		return nil
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd)}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `
regex - compile small regular expressions into state graphs.

Usage:
  regex match [flags] PATTERN SUBJECT...   report whether each subject matches
  regex dot   [flags] PATTERN              write the state graph in Graphviz DOT
  regex gen   [flags] [PATTERN]            generate a Go match function
  regex set   [flags] SUBJECT...           match subjects against a pattern file

Run "regex COMMAND -h" for the flags of a command.
`)
}
