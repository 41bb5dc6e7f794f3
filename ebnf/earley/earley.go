// Package earley recognizes byte strings against an EBNF grammar from
// golang.org/x/exp/ebnf.
//
// The grammar is rewritten into plain BNF rules over single bytes and run
// through an Earley recognizer. Every production is treated as lexical: no
// whitespace is skipped between terminals.
package earley

import (
	"fmt"

	"golang.org/x/exp/ebnf"
)

// symbol is either a nonterminal or a byte range.
type symbol struct {
	terminal bool
	nt       int
	lo, hi   byte
}

func (s symbol) matches(c byte) bool {
	return s.terminal && s.lo <= c && c <= s.hi
}

type rule struct {
	lhs int
	rhs []symbol
}

// Recognizer holds a grammar rewritten for recognition.
type Recognizer struct {
	rules    []rule
	byLHS    map[int][]int
	names    []string
	ids      map[string]int
	nullable map[int]bool
	start    int
	goal     string
}

// New rewrites g for recognition starting at production start.
func New(g ebnf.Grammar, start string) (*Recognizer, error) {
	if g[start] == nil {
		return nil, fmt.Errorf("production %q not found in grammar", start)
	}
	r := &Recognizer{
		byLHS: make(map[int][]int),
		ids:   make(map[string]int),
		goal:  start,
	}

	for name, prod := range g {
		lhs := r.named(name)
		if err := r.alternatives(lhs, prod.Expr); err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
	}
	for name, id := range r.ids {
		if len(r.byLHS[id]) == 0 {
			return nil, fmt.Errorf("production %q not found in grammar", name)
		}
	}

	r.start = r.fresh("start")
	r.add(r.start, []symbol{{nt: r.named(start)}})
	r.computeNullable()

	return r, nil
}

func (r *Recognizer) named(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := r.fresh(name)
	r.ids[name] = id
	return id
}

func (r *Recognizer) fresh(name string) int {
	r.names = append(r.names, name)
	return len(r.names) - 1
}

func (r *Recognizer) add(lhs int, rhs []symbol) {
	r.byLHS[lhs] = append(r.byLHS[lhs], len(r.rules))
	r.rules = append(r.rules, rule{lhs: lhs, rhs: rhs})
}

// alternatives adds one rule for lhs per top-level alternative of expr.
func (r *Recognizer) alternatives(lhs int, expr ebnf.Expression) error {
	if alt, ok := expr.(ebnf.Alternative); ok {
		for _, e := range alt {
			if err := r.alternatives(lhs, e); err != nil {
				return err
			}
		}
		return nil
	}
	rhs, err := r.sequence(expr)
	if err != nil {
		return err
	}
	r.add(lhs, rhs)
	return nil
}

// sequence returns the symbols matching expr, adding helper rules as needed.
func (r *Recognizer) sequence(expr ebnf.Expression) ([]symbol, error) {
	switch e := expr.(type) {
	case nil:
		return nil, nil
	case *ebnf.Name:
		return []symbol{{nt: r.named(e.String)}}, nil
	case *ebnf.Token:
		syms := make([]symbol, len(e.String))
		for i := 0; i < len(e.String); i++ {
			syms[i] = symbol{terminal: true, lo: e.String[i], hi: e.String[i]}
		}
		return syms, nil
	case *ebnf.Range:
		if len(e.Begin.String) != 1 || len(e.End.String) != 1 {
			return nil, fmt.Errorf("range %q … %q is not a single byte range", e.Begin.String, e.End.String)
		}
		return []symbol{{terminal: true, lo: e.Begin.String[0], hi: e.End.String[0]}}, nil
	case ebnf.Sequence:
		var syms []symbol
		for _, x := range e {
			s, err := r.sequence(x)
			if err != nil {
				return nil, err
			}
			syms = append(syms, s...)
		}
		return syms, nil
	case ebnf.Alternative:
		id := r.fresh("alternative")
		return []symbol{{nt: id}}, r.alternatives(id, e)
	case *ebnf.Group:
		return r.sequence(e.Body)
	case *ebnf.Option:
		id := r.fresh("option")
		r.add(id, nil)
		return []symbol{{nt: id}}, r.alternatives(id, e.Body)
	case *ebnf.Repetition:
		// R = ε | body R
		id := r.fresh("repetition")
		r.add(id, nil)
		body := r.fresh("repetition body")
		if err := r.alternatives(body, e.Body); err != nil {
			return nil, err
		}
		r.add(id, []symbol{{nt: body}, {nt: id}})
		return []symbol{{nt: id}}, nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (r *Recognizer) computeNullable() {
	r.nullable = make(map[int]bool)
	for changed := true; changed; {
		changed = false
		for _, ru := range r.rules {
			if r.nullable[ru.lhs] {
				continue
			}
			all := true
			for _, s := range ru.rhs {
				if s.terminal || !r.nullable[s.nt] {
					all = false
					break
				}
			}
			if all {
				r.nullable[ru.lhs] = true
				changed = true
			}
		}
	}
}

// item is an Earley item: a rule, a dot position and an origin.
type item struct {
	rule   int
	dot    int
	origin int
}

type itemSet struct {
	items []item
	seen  map[item]bool
}

func (s *itemSet) add(it item) {
	if s.seen == nil {
		s.seen = make(map[item]bool)
	}
	if s.seen[it] {
		return
	}
	s.seen[it] = true
	s.items = append(s.items, it)
}

// Error reports input that is not in the language.
type Error struct {
	// Offset is the position of the first byte no parse could continue
	// past, or len(input) when the input ended early.
	Offset int
	Start  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: input does not match %s", e.Offset, e.Start)
}

// Recognize reports whether input is a sentence of the start production.
// The returned error is an *Error.
func (r *Recognizer) Recognize(input []byte) error {
	n := len(input)
	chart := make([]itemSet, n+1)
	for _, ri := range r.byLHS[r.start] {
		chart[0].add(item{rule: ri})
	}

	furthest := 0
	for i := 0; i <= n; i++ {
		if len(chart[i].items) > 0 {
			furthest = i
		}
		// items may be added while iterating
		for j := 0; j < len(chart[i].items); j++ {
			it := chart[i].items[j]
			ru := r.rules[it.rule]

			if it.dot == len(ru.rhs) {
				r.complete(chart, i, it)
				continue
			}

			next := ru.rhs[it.dot]
			if next.terminal {
				if i < n && next.matches(input[i]) {
					chart[i+1].add(item{rule: it.rule, dot: it.dot + 1, origin: it.origin})
				}
				continue
			}

			for _, ri := range r.byLHS[next.nt] {
				chart[i].add(item{rule: ri, origin: i})
			}
			if r.nullable[next.nt] {
				chart[i].add(item{rule: it.rule, dot: it.dot + 1, origin: it.origin})
			}
		}
	}

	for _, it := range chart[n].items {
		ru := r.rules[it.rule]
		if ru.lhs == r.start && it.origin == 0 && it.dot == len(ru.rhs) {
			return nil
		}
	}
	return &Error{Offset: furthest, Start: r.goal}
}

func (r *Recognizer) complete(chart []itemSet, i int, done item) {
	lhs := r.rules[done.rule].lhs
	origin := &chart[done.origin]
	for k := 0; k < len(origin.items); k++ {
		it := origin.items[k]
		ru := r.rules[it.rule]
		if it.dot < len(ru.rhs) && !ru.rhs[it.dot].terminal && ru.rhs[it.dot].nt == lhs {
			chart[i].add(item{rule: it.rule, dot: it.dot + 1, origin: it.origin})
		}
	}
}
