package nfa

import (
	"github.com/Kris030/regex/internal/conv"
	"github.com/Kris030/regex/internal/sparse"
)

// PikeVM simulates the NFA directly by tracking the set of active states.
//
// It needs no determinization and so has no state limit, at the cost of
// O(n*m) time for a subject of n characters and an NFA of m states. It
// answers full-match questions: a subject matches when the match state is
// active after the last character.
//
// A PikeVM holds per-search scratch space and is not safe for concurrent
// use.
type PikeVM struct {
	nfa   *NFA
	curr  *sparse.SparseSet
	next  *sparse.SparseSet
	stack []StateID
}

// NewPikeVM creates a PikeVM for n.
func NewPikeVM(n *NFA) *PikeVM {
	capacity := conv.IntToUint32(n.States())
	return &PikeVM{
		nfa:  n,
		curr: sparse.NewSparseSet(capacity),
		next: sparse.NewSparseSet(capacity),
	}
}

// IsMatch reports whether the NFA matches the whole of input.
func (p *PikeVM) IsMatch(input string) bool {
	p.curr.Clear()
	p.addThread(p.curr, p.nfa.Start())

	for _, c := range input {
		if p.curr.Len() == 0 {
			return false
		}
		p.next.Clear()
		for _, v := range p.curr.Values() {
			r, to := p.nfa.State(StateID(v)).Rune()
			if to != InvalidState && r == c {
				p.addThread(p.next, to)
			}
		}
		p.curr, p.next = p.next, p.curr
	}

	for _, v := range p.curr.Values() {
		if p.nfa.IsMatch(StateID(v)) {
			return true
		}
	}
	return false
}

// addThread adds id and every state reachable from it through Split and
// Epsilon states to set. The loop uses an explicit stack so deep
// quantifier nesting cannot overflow the goroutine stack.
func (p *PikeVM) addThread(set *sparse.SparseSet, id StateID) {
	p.stack = append(p.stack[:0], id)
	for len(p.stack) > 0 {
		id := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if !set.Insert(uint32(id)) {
			continue
		}

		s := p.nfa.State(id)
		switch s.Kind() {
		case StateEpsilon:
			p.stack = append(p.stack, s.Epsilon())
		case StateSplit:
			left, right := s.Split()
			p.stack = append(p.stack, right, left)
		}
	}
}
