package parse

// Many applies p until it stops matching and collects the values. Many never
// fails on its own: it returns an empty slice if p does not match at all.
//
// On input that is not flagged as the end, a run of matches reaching the end
// of the available bytes is incomplete, since one more match might follow.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, Unbounded(), Slice[T]())
}

// Many1 is like Many but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, AtLeast(1), Slice[T]())
}

// Count applies p exactly n times.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return Repeat(p, Exactly(n), Slice[T]())
}

// SkipMany applies p until it stops matching and drops the values.
func SkipMany[T any](p Parser[T]) Parser[struct{}] {
	return Repeat(p, Unbounded(), Discard[T]())
}

// SkipMany1 is like SkipMany but requires at least one match.
func SkipMany1[T any](p Parser[T]) Parser[struct{}] {
	return Repeat(p, AtLeast(1), Discard[T]())
}

// ManyTill applies p until end matches and collects p's values. The input
// matched by end is consumed but its value is dropped.
func ManyTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return RepeatTill(p, end, Unbounded(), Slice[T]())
}

// SepBy applies p zero or more times with sep between the matches.
//
// A separator that is not followed by a match of p is left in the input.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return SepByBounded(p, sep, Unbounded(), Slice[T]())
}

// SepBy1 is like SepBy but requires at least one match of p.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return SepByBounded(p, sep, AtLeast(1), Slice[T]())
}

// SepByBounded applies p with sep between the matches as many times as b
// allows. Each separator and the item after it form one step of the
// repetition: if the item does not match, the step is a mismatch at the
// position before the separator.
func SepByBounded[T, S, C any](p Parser[T], sep Parser[S], b Bound, acc Accumulator[T, C]) Parser[C] {
	next := sepThen(sep, p)
	step := func(n int) Parser[T] {
		if n == 0 {
			return p
		}
		return next
	}
	return func(in Input) Result[C] {
		return repeat(in, step, b, acc)
	}
}

func sepThen[T, S any](sep Parser[S], p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		rs := sep(in)
		if rs.status != StatusSuccess {
			return retype[T](rs)
		}
		r := p(rs.rest)
		if r.status == StatusFailure && r.Consumed(rs.rest) == 0 {
			return Fail[T](in, r.err)
		}
		return r
	}
}
