package rules

import (
	"github.com/dhamidi/nibble/ascii"
	"github.com/dhamidi/nibble/parse"
)

func isNameChar(c byte) bool {
	return ascii.IsAlphanumeric(c) || c == '_'
}

func notEndOfLine(c byte) bool {
	return !ascii.IsEndOfLine(c)
}

var blanks = parse.SkipWhile(ascii.IsHorizontalSpace)

// lexeme runs p and skips the blanks after it.
func lexeme[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.Skip(p, blanks)
}

func sym(c byte) parse.Parser[byte] {
	return lexeme(parse.Token(c))
}

var name = lexeme(parse.Label(
	parse.Map(parse.TakeWhile1(isNameChar), func(b []byte) string { return string(b) }),
	"identifier",
))

// trivia skips whitespace, line breaks and '#' comments between rules.
var trivia = parse.SkipMany(parse.Or(
	parse.TakeWhile1(ascii.IsSpace),
	parse.Then(parse.Token('#'), parse.TakeWhile(notEndOfLine)),
))

var unary parse.Parser[Constraint]

var constraint = parse.Map(
	parse.SepBy1(conjunction, sym('|')),
	func(terms []Constraint) Constraint {
		if len(terms) == 1 {
			return terms[0]
		}
		return Or(terms)
	},
)

var conjunction = parse.Map(
	parse.SepBy1(parse.Lazy(func() parse.Parser[Constraint] { return unary }), sym('.')),
	func(terms []Constraint) Constraint {
		if len(terms) == 1 {
			return terms[0]
		}
		return And(terms)
	},
)

func init() {
	unary = parse.Choice(
		parse.Then(sym('!'), parse.Map(parse.Lazy(func() parse.Parser[Constraint] { return unary }), func(c Constraint) Constraint {
			return Not{X: c}
		})),
		parse.Between(sym('('), parse.Lazy(func() parse.Parser[Constraint] { return constraint }), sym(')')),
		parse.Map(name, func(s string) Constraint { return Ident(s) }),
	)
}

// ParseRule parses one rule of the form
//
//	source :constraint: destination
//
// followed by any whitespace and comments. '.' binds tighter than '|' and
// '!' applies to the term directly after it.
var ParseRule = parse.Sequence(func(s *parse.Seq) Rule {
	src := parse.Get(s, name)
	parse.Get(s, sym(':'))
	c := parse.Get(s, constraint)
	parse.Get(s, sym(':'))
	dst := parse.Get(s, name)
	parse.Get(s, trivia)
	return Rule{Source: src, Destination: dst, Constraint: c}
})
