package compiler

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how a pattern is translated into a graph.
type Mode uint8

const (
	// ModeCompat keeps the legacy single-pass state construction.
	//
	// A group's quantifier binds to the pattern character right after its
	// `(`. A `+` takes the next pattern character, whatever it is, as its
	// exit edge, or exits on any other character at the end of the
	// pattern. A `)` with no open group and a quantifier with nothing to
	// repeat are literals. `*` and `?` after a unit are rejected, and a
	// match is accepted as soon as Done is reached even if input remains.
	ModeCompat Mode = iota

	// ModeStandard builds a Thompson NFA with all four quantifiers applied
	// to whole units and determinizes it. A match must consume the entire
	// subject. Backslash escapes the next character.
	ModeStandard
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeCompat:
		return "compat"
	case ModeStandard:
		return "standard"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode parses "compat" or "standard" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compat":
		return ModeCompat, nil
	case "standard":
		return ModeStandard, nil
	}
	return 0, &ConfigError{Field: "Mode", Message: fmt.Sprintf("unknown mode %q", s)}
}

// Config controls pattern compilation.
//
// Example:
//
//	config := compiler.DefaultConfig()
//	config.Mode = compiler.ModeStandard
//	g, err := compiler.CompileWithConfig("(ab)*c", config)
type Config struct {
	// Mode selects the translation.
	// Default: ModeCompat
	Mode Mode

	// MaxStates caps the number of determinized states in ModeStandard.
	// Default: 10000
	MaxStates int

	// MaxDepth limits group nesting.
	// Default: 100
	MaxDepth int

	// Logger receives debug records about compilation. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeCompat,
		MaxStates: 10000,
		MaxDepth:  100,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Mode: ModeCompat or ModeStandard
//   - MaxStates: 1 to 100,000
//   - MaxDepth: 10 to 1,000
func (c Config) Validate() error {
	if c.Mode != ModeCompat && c.Mode != ModeStandard {
		return &ConfigError{Field: "Mode", Message: "must be ModeCompat or ModeStandard"}
	}
	if c.MaxStates < 1 || c.MaxStates > 100_000 {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must be between 1 and 100,000",
		}
	}
	if c.MaxDepth < 10 || c.MaxDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxDepth",
			Message: "must be between 10 and 1,000",
		}
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regex: invalid config: " + e.Field + ": " + e.Message
}
