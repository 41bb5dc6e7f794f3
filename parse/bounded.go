package parse

import "fmt"

// NoLimit is the Max of a Bound without an upper limit.
const NoLimit = -1

// Bound is the range of repetitions a repeated parser may match.
type Bound struct {
	Min int
	Max int
}

// Unbounded matches any number of repetitions.
func Unbounded() Bound {
	return Bound{Min: 0, Max: NoLimit}
}

// AtLeast matches n or more repetitions.
func AtLeast(n int) Bound {
	if n < 0 {
		panic(fmt.Sprintf("parse: invalid bound AtLeast(%d)", n))
	}
	return Bound{Min: n, Max: NoLimit}
}

// AtMost matches up to n repetitions.
func AtMost(n int) Bound {
	return Range(0, n)
}

// Exactly matches exactly n repetitions.
func Exactly(n int) Bound {
	return Range(n, n)
}

// Range matches between min and max repetitions, inclusive.
func Range(min, max int) Bound {
	if min < 0 || max < min {
		panic(fmt.Sprintf("parse: invalid bound Range(%d, %d)", min, max))
	}
	return Bound{Min: min, Max: max}
}

func (b Bound) String() string {
	if b.Max == NoLimit {
		return fmt.Sprintf("{%d,}", b.Min)
	}
	return fmt.Sprintf("{%d,%d}", b.Min, b.Max)
}

func (b Bound) reached(n int) bool {
	return b.Max != NoLimit && n >= b.Max
}

func (b Bound) satisfied(n int) bool {
	return n >= b.Min
}

// Repeat applies p as many times as b allows and gathers the values with acc.
//
// A mismatch from p ends the repetition if b.Min has been reached and is
// returned otherwise. A committed failure is always returned. An incomplete
// result is returned unless the input is flagged as the end, where it is
// treated as a mismatch.
func Repeat[T, C any](p Parser[T], b Bound, acc Accumulator[T, C]) Parser[C] {
	step := func(int) Parser[T] { return p }
	return func(in Input) Result[C] {
		return repeat(in, step, b, acc)
	}
}

// repeat is the loop behind every repetition combinator. step returns the
// parser for the n-th attempt.
func repeat[T, C any](in Input, step func(n int) Parser[T], b Bound, acc Accumulator[T, C]) Result[C] {
	out := acc.Empty()
	cur := in
	for n := 0; ; n++ {
		if b.reached(n) {
			return Succeed(cur, out)
		}
		r := step(n)(cur)
		switch r.status {
		case StatusSuccess:
			out = acc.Push(out, r.value)
			if r.Consumed(cur) == 0 && b.Max == NoLimit && b.satisfied(n+1) {
				return Succeed(cur, out)
			}
			cur = r.rest
		case StatusFailure:
			if r.Consumed(cur) > 0 || !b.satisfied(n) {
				return Fail[C](r.rest, r.err)
			}
			return Succeed(cur, out)
		default:
			if !cur.AtEnd() {
				return NeedMore[C](r.need)
			}
			if !b.satisfied(n) {
				return Fail[C](cur, unexpectedEOF(cur))
			}
			return Succeed(cur, out)
		}
	}
}

// RepeatTill applies p until end matches, gathering p's values with acc. end
// is only tried once b.Min values have been gathered; its value is dropped but
// its input is consumed. Any failure of p is returned, as is a committed
// failure of end. If b.Max repetitions pass without end matching the result
// is a failure wrapping ErrEndNotFound.
func RepeatTill[T, E, C any](p Parser[T], end Parser[E], b Bound, acc Accumulator[T, C]) Parser[C] {
	return func(in Input) Result[C] {
		out := acc.Empty()
		cur := in
		for n := 0; ; n++ {
			if b.satisfied(n) {
				re := end(cur)
				switch {
				case re.status == StatusSuccess:
					return Succeed(re.rest, out)
				case re.status == StatusFailure && re.Consumed(cur) > 0:
					return Fail[C](re.rest, re.err)
				case re.status == StatusIncomplete && !cur.AtEnd():
					return NeedMore[C](re.need)
				}
			}
			if b.reached(n) {
				return Fail[C](cur, fmt.Errorf("offset %d: %w", cur.Offset(), ErrEndNotFound))
			}
			r := p(cur)
			switch r.status {
			case StatusSuccess:
				if r.Consumed(cur) == 0 && b.Max == NoLimit && b.satisfied(n) {
					// end already missed here and nothing moved: it never will match.
					return Fail[C](cur, fmt.Errorf("offset %d: %w", cur.Offset(), ErrEndNotFound))
				}
				out = acc.Push(out, r.value)
				cur = r.rest
			case StatusFailure:
				return Fail[C](r.rest, r.err)
			default:
				if cur.AtEnd() {
					return Fail[C](cur, unexpectedEOF(cur))
				}
				return NeedMore[C](r.need)
			}
		}
	}
}
