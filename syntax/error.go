package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a structurally invalid pattern.
	ErrMalformed = errors.New("malformed pattern")

	// ErrUnsupported indicates a well-formed construct the selected mode
	// does not implement.
	ErrUnsupported = errors.New("unsupported pattern feature")
)

// ErrorCode describes what is wrong with a pattern.
type ErrorCode string

const (
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrEmptyGroup            ErrorCode = "empty group"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrNestedRepeat          ErrorCode = "invalid nested repetition operator"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrNestingDepth          ErrorCode = "expression nests too deeply"

	ErrUnsupportedQuantifier ErrorCode = "unsupported quantifier"
)

// Unsupported reports whether the code names a missing feature rather than
// a syntax error.
func (c ErrorCode) Unsupported() bool {
	return c == ErrUnsupportedQuantifier
}

// Error describes a pattern that cannot be compiled. It wraps ErrMalformed
// or ErrUnsupported so callers can tell the two apart with errors.Is.
type Error struct {
	Code    ErrorCode
	Pattern string
	Offset  int    // byte offset of the offending construct
	Expr    string // the offending text
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("regex: %s at offset %d: `%s` in pattern %q", e.Code, e.Offset, e.Expr, e.Pattern)
}

// Unwrap returns ErrUnsupported or ErrMalformed.
func (e *Error) Unwrap() error {
	if e.Code.Unsupported() {
		return ErrUnsupported
	}
	return ErrMalformed
}

// NewError creates an error for the construct at offset, using the text up
// to the next character as Expr.
func NewError(code ErrorCode, pattern string, offset int) *Error {
	expr := ""
	if offset < len(pattern) {
		_, size := decodeRune(pattern[offset:])
		expr = pattern[offset : offset+size]
	}
	return &Error{Code: code, Pattern: pattern, Offset: offset, Expr: expr}
}
