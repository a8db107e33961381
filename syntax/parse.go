package syntax

import "unicode/utf8"

// Flags control which constructs the parser accepts.
type Flags uint8

const (
	// AllowZeroPlus accepts the `*` quantifier.
	AllowZeroPlus Flags = 1 << iota

	// AllowOptional accepts the `?` quantifier.
	AllowOptional

	// Escapes makes `\` quote the following character.
	Escapes

	// Legacy reads the pattern like the single-pass compat reader: `+`
	// takes the next pattern character verbatim as its fallback, a group
	// records the character right after `(` as its head, and a `)` or
	// quantifier that has nothing to close or repeat is a literal.
	Legacy

	// Compat accepts only `+` and treats `\` as a literal.
	Compat = Legacy

	// Standard accepts every quantifier and backslash escapes.
	Standard = AllowZeroPlus | AllowOptional | Escapes
)

// DefaultMaxDepth is the group nesting limit used when Parse is given a
// non-positive depth.
const DefaultMaxDepth = 100

type parser struct {
	pattern  string
	pos      int
	flags    Flags
	maxDepth int
}

// Parse parses pattern into units in a single left-to-right pass.
//
// Quantifiers the flags do not allow are reported with
// ErrUnsupportedQuantifier as soon as they are seen, before any other check
// at that position. Groups may nest at most maxDepth levels.
func Parse(pattern string, flags Flags, maxDepth int) (*Regexp, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{
		pattern:  pattern,
		flags:    flags,
		maxDepth: maxDepth,
	}

	units, err := p.parseSeq(0, -1)
	if err != nil {
		return nil, err
	}
	return &Regexp{Pattern: pattern, Units: units}, nil
}

// parseSeq parses units until the end of the pattern or, inside a group,
// until the closing parenthesis, which it leaves unconsumed. open is the
// offset of the enclosing '(' or -1 at top level.
func (p *parser) parseSeq(depth, open int) ([]*Node, error) {
	var units []*Node
	for {
		if p.eof() {
			if open >= 0 {
				return nil, NewError(ErrMissingParen, p.pattern, open)
			}
			return units, nil
		}

		if p.peek() == ')' {
			if open >= 0 {
				return units, nil
			}
			if !p.legacy() {
				return nil, p.errorHere(ErrUnexpectedParen)
			}
		}

		n, err := p.parseUnit(depth)
		if err != nil {
			return nil, err
		}
		if err := p.parseQuantifier(n); err != nil {
			return nil, err
		}
		units = append(units, n)
	}
}

func (p *parser) parseUnit(depth int) (*Node, error) {
	start := p.pos
	r := p.peek()

	if q, ok := quantifierOf(r); ok && !p.legacy() {
		if !p.allows(q) {
			return nil, p.errorHere(ErrUnsupportedQuantifier)
		}
		return nil, p.errorHere(ErrMissingRepeatArgument)
	}

	switch {
	case r == '(':
		if depth+1 > p.maxDepth {
			return nil, p.errorHere(ErrNestingDepth)
		}
		p.next()
		var head rune
		if !p.eof() {
			head = p.peek()
		}
		sub, err := p.parseSeq(depth+1, start)
		if err != nil {
			return nil, err
		}
		if len(sub) == 0 && !p.legacy() {
			return nil, NewError(ErrEmptyGroup, p.pattern, start)
		}
		p.next() // ')'
		return &Node{Kind: KindGroup, Sub: sub, Head: head, Pos: start}, nil

	case r == '\\' && p.flags&Escapes != 0:
		p.next()
		if p.eof() {
			return nil, NewError(ErrTrailingBackslash, p.pattern, start)
		}
		return &Node{Kind: KindLiteral, Rune: p.next(), Pos: start}, nil

	default:
		return &Node{Kind: KindLiteral, Rune: p.next(), Pos: start}, nil
	}
}

// parseQuantifier attaches an optional quantifier to n and rejects a second
// one directly after it. Under Legacy, a `+` instead takes the next
// character, whatever it is, as n's fallback.
func (p *parser) parseQuantifier(n *Node) error {
	if p.eof() {
		return nil
	}
	q, ok := quantifierOf(p.peek())
	if !ok {
		return nil
	}
	if !p.allows(q) {
		return p.errorHere(ErrUnsupportedQuantifier)
	}
	p.next()
	n.Quant = q

	if p.eof() {
		return nil
	}
	if p.legacy() {
		n.Fallback, n.HasFallback = p.next(), true
		return nil
	}
	if q2, ok := quantifierOf(p.peek()); ok {
		if !p.allows(q2) {
			return p.errorHere(ErrUnsupportedQuantifier)
		}
		return p.errorHere(ErrNestedRepeat)
	}
	return nil
}

func (p *parser) allows(q Quantifier) bool {
	switch q {
	case QuantZeroPlus:
		return p.flags&AllowZeroPlus != 0
	case QuantOptional:
		return p.flags&AllowOptional != 0
	}
	return true
}

func (p *parser) legacy() bool {
	return p.flags&Legacy != 0
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() rune {
	r, _ := decodeRune(p.pattern[p.pos:])
	return r
}

func (p *parser) next() rune {
	r, size := decodeRune(p.pattern[p.pos:])
	p.pos += size
	return r
}

func (p *parser) errorHere(code ErrorCode) *Error {
	return NewError(code, p.pattern, p.pos)
}

// decodeRune decodes the first character of s. Invalid UTF-8 decodes to
// utf8.RuneError with size 1, so the parser always advances.
func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
