package parse

// Return is a parser that consumes nothing and yields v.
func Return[T any](v T) Parser[T] {
	return func(in Input) Result[T] {
		return Succeed(in, v)
	}
}

// FailWith is a parser that consumes nothing and fails with err.
func FailWith[T any](err error) Parser[T] {
	return func(in Input) Result[T] {
		return Fail[T](in, err)
	}
}

// AndThen continues a successful result with f. Failures and incomplete
// results are passed through unchanged.
func AndThen[T, U any](r Result[T], f func(Input, T) Result[U]) Result[U] {
	if r.status != StatusSuccess {
		return retype[U](r)
	}
	return f(r.rest, r.value)
}

// Bind runs p and then the parser chosen by f from p's value.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in Input) Result[U] {
		return AndThen(p(in), func(rest Input, v T) Result[U] {
			return f(v)(rest)
		})
	}
}

// Then runs p and then q, keeping q's value.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return func(in Input) Result[U] {
		return AndThen(p(in), func(rest Input, _ T) Result[U] {
			return q(rest)
		})
	}
}

// Skip runs p and then q, keeping p's value.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return func(in Input) Result[T] {
		return AndThen(p(in), func(rest Input, v T) Result[T] {
			return AndThen(q(rest), func(rest Input, _ U) Result[T] {
				return Succeed(rest, v)
			})
		})
	}
}

// Between runs open, p and close in order and keeps p's value.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Then(open, Skip(p, close))
}

// Map transforms the value of a successful p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if r.status != StatusSuccess {
			return retype[U](r)
		}
		return Succeed(r.rest, f(r.value))
	}
}

// As replaces the value of a successful p with v.
func As[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// MapErr transforms the diagnostic of a failed p. The failure position is
// kept, so a committed failure stays committed.
func MapErr[T any](p Parser[T], f func(error) error) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.status == StatusFailure {
			r.err = f(r.err)
		}
		return r
	}
}

// Label replaces the diagnostic of a mismatch with "expected what".
func Label[T any](p Parser[T], what string) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.status == StatusFailure && r.Consumed(in) == 0 && !r.rest.Empty() {
			r.err = expected(r.rest, what)
		}
		return r
	}
}

// Or runs p, and if p fails without consuming input, runs q on the original
// input. A failure after consuming input is returned as is, and so is an
// incomplete result from p.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.status == StatusFailure && r.Consumed(in) == 0 {
			return q(in)
		}
		return r
	}
}

// Choice tries each parser in turn with the rules of Or.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("parse: Choice needs at least one parser")
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = Or(ps[i], p)
	}
	return p
}

// Option runs p and yields def at the original input if p fails without
// consuming input.
func Option[T any](p Parser[T], def T) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.status == StatusFailure && r.Consumed(in) == 0 {
			return Succeed(in, def)
		}
		return r
	}
}

// LookAhead runs p without moving the input. The value or diagnostic of p is
// reported at the original position.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		switch r.status {
		case StatusSuccess:
			return Succeed(in, r.value)
		case StatusFailure:
			return Fail[T](in, r.err)
		default:
			return r
		}
	}
}

// Matched pairs a parsed value with the bytes that produced it.
type Matched[T any] struct {
	Span  []byte
	Value T
}

// MatchedBy runs p and also returns the exact bytes p consumed.
func MatchedBy[T any](p Parser[T]) Parser[Matched[T]] {
	return func(in Input) Result[Matched[T]] {
		r := p(in)
		if r.status != StatusSuccess {
			return retype[Matched[T]](r)
		}
		return Succeed(r.rest, Matched[T]{Span: in.Take(r.Consumed(in)), Value: r.value})
	}
}

// Attempt runs p and turns a committed failure into a mismatch at the
// original input, allowing Or and the repetition combinators to backtrack
// over it.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.status == StatusFailure {
			return Fail[T](in, r.err)
		}
		return r
	}
}

// Lazy defers looking up a parser until it runs. It is used to tie recursive
// grammars together; f is called on every run and should be cheap.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		return f()(in)
	}
}
