// Package prefilter finds candidate match positions before the automaton
// runs.
//
// A prefilter scans the haystack for the literal prefixes extracted from
// compiled patterns. Positions it skips cannot start a match; positions it
// returns still need verification unless IsComplete reports true.
//
// The Builder picks the strategy from the literal sequence:
//   - Single byte → memchr-style byte search
//   - Single substring → substring search
//   - Several literals → Aho-Corasick automaton
//
// Example usage:
//
//	seq := literal.Prefixes(graphs, 0)
//	pf := prefilter.NewBuilder(seq).Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	}
package prefilter

import (
	"bytes"

	"github.com/Kris030/regex/literal"
)

// Prefilter is used to quickly find candidate match positions before running
// the full automaton.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// start, or -1 if no candidate is found.
	//
	// A candidate is a position where one of the literals begins. The caller
	// must verify it with the automaton unless IsComplete() is true.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a prefilter match guarantees a full match.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when IsComplete()
	// is true, and 0 otherwise.
	LiteralLen() int
}

// Builder constructs a prefilter from extracted literals.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a new prefilter builder from a literal sequence.
// A nil sequence yields no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the given literals. It returns nil
// when the literals cannot rule out any position: the sequence is empty or
// one of its literals is empty.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if seq.IsEmpty() || seq.HasEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := bytes.IndexByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}

	return start + idx
}

func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)

	return &memmemPrefilter{
		needle:   needleCopy,
		complete: complete,
	}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := bytes.Index(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}

	return start + idx
}

func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}
