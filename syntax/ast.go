// Package syntax parses patterns into a tree of units.
//
// The pattern language is small: a pattern is a sequence of units, and a
// unit is a literal character or a parenthesized group of units, optionally
// followed by one quantifier. Which quantifiers are accepted, and whether a
// backslash escapes the next character, depends on the Flags passed to Parse.
package syntax

import (
	"fmt"
	"strings"
)

// Quantifier is the repetition suffix of a unit.
type Quantifier uint8

const (
	// QuantNone means the unit occurs exactly once.
	QuantNone Quantifier = iota

	// QuantOnePlus is `+`.
	QuantOnePlus

	// QuantZeroPlus is `*`.
	QuantZeroPlus

	// QuantOptional is `?`.
	QuantOptional
)

// String returns a human-readable representation of the Quantifier.
func (q Quantifier) String() string {
	switch q {
	case QuantNone:
		return "None"
	case QuantOnePlus:
		return "OnePlus"
	case QuantZeroPlus:
		return "ZeroPlus"
	case QuantOptional:
		return "Optional"
	default:
		return fmt.Sprintf("Unknown(%d)", q)
	}
}

// Symbol returns the pattern suffix for q, or "" for QuantNone.
func (q Quantifier) Symbol() string {
	switch q {
	case QuantOnePlus:
		return "+"
	case QuantZeroPlus:
		return "*"
	case QuantOptional:
		return "?"
	default:
		return ""
	}
}

func quantifierOf(r rune) (Quantifier, bool) {
	switch r {
	case '+':
		return QuantOnePlus, true
	case '*':
		return QuantZeroPlus, true
	case '?':
		return QuantOptional, true
	}
	return QuantNone, false
}

// NodeKind identifies the kind of a unit.
type NodeKind uint8

const (
	// KindLiteral is a single character.
	KindLiteral NodeKind = iota

	// KindGroup is a parenthesized, non-empty sequence of units.
	KindGroup
)

// Node is one unit of a pattern.
type Node struct {
	Kind  NodeKind
	Rune  rune    // KindLiteral: the character
	Sub   []*Node // KindGroup: the enclosed units
	Head  rune    // KindGroup: the pattern character right after '('
	Quant Quantifier
	Pos   int // byte offset of the unit in the pattern

	// Fallback is the character read verbatim after a Legacy `+`.
	// HasFallback is false when the `+` ends the pattern.
	Fallback    rune
	HasFallback bool
}

// String renders the unit back into pattern syntax.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Kind == KindGroup {
		sb.WriteByte('(')
		for _, s := range n.Sub {
			s.write(sb)
		}
		sb.WriteByte(')')
	} else {
		if isMeta(n.Rune) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(n.Rune)
	}
	sb.WriteString(n.Quant.Symbol())
	if n.HasFallback {
		sb.WriteRune(n.Fallback)
	}
}

// Regexp is a parsed pattern.
type Regexp struct {
	Pattern string
	Units   []*Node
}

// String renders the parsed units back into pattern syntax, escaping
// metacharacters that appear as literals.
func (re *Regexp) String() string {
	var sb strings.Builder
	for _, n := range re.Units {
		n.write(&sb)
	}
	return sb.String()
}

func isMeta(r rune) bool {
	switch r {
	case '(', ')', '+', '*', '?', '\\':
		return true
	}
	return false
}
