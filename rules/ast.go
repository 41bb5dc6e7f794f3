package rules

import "strings"

// Constraint is a boolean expression over named facts.
type Constraint interface {
	// Eval reports whether the constraint holds when has reports which facts
	// are present.
	Eval(has func(name string) bool) bool
	String() string

	constraint()
}

// Ident is a single fact.
type Ident string

// Not negates a constraint.
type Not struct {
	X Constraint
}

// And holds when every term holds.
type And []Constraint

// Or holds when any term holds.
type Or []Constraint

func (Ident) constraint() {}
func (Not) constraint()   {}
func (And) constraint()   {}
func (Or) constraint()    {}

func (id Ident) Eval(has func(string) bool) bool {
	return has(string(id))
}

func (n Not) Eval(has func(string) bool) bool {
	return !n.X.Eval(has)
}

func (a And) Eval(has func(string) bool) bool {
	for _, c := range a {
		if !c.Eval(has) {
			return false
		}
	}
	return true
}

func (o Or) Eval(has func(string) bool) bool {
	for _, c := range o {
		if c.Eval(has) {
			return true
		}
	}
	return false
}

func (id Ident) String() string {
	return string(id)
}

func (n Not) String() string {
	if _, ok := n.X.(Ident); ok {
		return "!" + n.X.String()
	}
	if _, ok := n.X.(Not); ok {
		return "!" + n.X.String()
	}
	return "!(" + n.X.String() + ")"
}

func (a And) String() string {
	terms := make([]string, len(a))
	for i, c := range a {
		if _, ok := c.(Or); ok {
			terms[i] = "(" + c.String() + ")"
		} else {
			terms[i] = c.String()
		}
	}
	return strings.Join(terms, ".")
}

func (o Or) String() string {
	terms := make([]string, len(o))
	for i, c := range o {
		terms[i] = c.String()
	}
	return strings.Join(terms, " | ")
}

// Rule connects a source to a destination when its constraint holds.
type Rule struct {
	Source      string
	Destination string
	Constraint  Constraint
}

func (r Rule) String() string {
	return r.Source + " :" + r.Constraint.String() + ": " + r.Destination
}
