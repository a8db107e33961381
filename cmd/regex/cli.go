package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Kris030/regex"
)

// ExitError is a custom error type that includes a specific exit code.
// An empty Message exits without printing.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// commonFlags are accepted by every command.
type commonFlags struct {
	mode      string
	maxStates int
	maxDepth  int
	logLevel  string
	logFormat string
}

func newFlagSet(name, usage string, output io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "\nUsage:\n  regex %s %s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}

	defaults := regex.DefaultConfig()
	c := &commonFlags{}
	fs.StringVar(&c.mode, "mode", defaults.Mode.String(), "Compilation mode. Options: 'compat' or 'standard'.")
	fs.IntVar(&c.maxStates, "max-states", defaults.MaxStates, "Maximum number of states in standard mode.")
	fs.IntVar(&c.maxDepth, "max-depth", defaults.MaxDepth, "Maximum group nesting depth.")
	fs.StringVar(&c.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&c.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	return fs, c
}

// parseFlags parses args and reports whether the command should exit
// cleanly, as it does after -h.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	return false, nil
}

// config validates the common flags and builds the compile configuration.
// The logger writes to logW.
func (c *commonFlags) config(logW io.Writer) (regex.Config, error) {
	logger, err := newLogger(logW, c.logLevel, c.logFormat)
	if err != nil {
		return regex.Config{}, &ExitError{Code: 2, Message: err.Error()}
	}

	mode, err := regex.ParseMode(c.mode)
	if err != nil {
		return regex.Config{}, &ExitError{Code: 2, Message: err.Error()}
	}

	config := regex.DefaultConfig()
	config.Mode = mode
	config.MaxStates = c.maxStates
	config.MaxDepth = c.maxDepth
	config.Logger = logger
	if err := config.Validate(); err != nil {
		return regex.Config{}, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format: must be 'text' or 'json'")
	}
}

// compileError turns a compile failure into an exit status 2.
func compileError(pattern string, err error) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf("cannot compile %q: %v", pattern, err)}
}
