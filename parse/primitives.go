package parse

import (
	"bytes"
	"fmt"
	"strconv"
)

// missing reports a shortfall of n bytes: a failure at the end of input, an
// incomplete result otherwise.
func missing[T any](in Input, n int) Result[T] {
	if in.AtEnd() {
		return Fail[T](in, unexpectedEOF(in))
	}
	return NeedMore[T](n)
}

// Any matches a single byte.
var Any Parser[byte] = anyByte

// PeekNext returns the next byte without consuming it.
var PeekNext Parser[byte] = peekNext

// TakeRemainder matches everything up to the end of input. On partial input it
// is incomplete, since the remainder is not known yet.
var TakeRemainder Parser[[]byte] = takeRemainder

// EOF matches the end of input.
var EOF Parser[struct{}] = eof

func anyByte(in Input) Result[byte] {
	if in.Empty() {
		return missing[byte](in, 1)
	}
	return Succeed(in.Advance(1), in.data[0])
}

func peekNext(in Input) Result[byte] {
	if in.Empty() {
		return missing[byte](in, 1)
	}
	return Succeed(in, in.data[0])
}

// Satisfy matches a single byte for which pred holds.
func Satisfy(pred func(byte) bool) Parser[byte] {
	return func(in Input) Result[byte] {
		if in.Empty() {
			return missing[byte](in, 1)
		}
		if !pred(in.data[0]) {
			return Fail[byte](in, expected(in, "matching byte"))
		}
		return Succeed(in.Advance(1), in.data[0])
	}
}

// Token matches the byte t.
func Token(t byte) Parser[byte] {
	want := strconv.QuoteRune(rune(t))
	return func(in Input) Result[byte] {
		if in.Empty() {
			return missing[byte](in, 1)
		}
		if in.data[0] != t {
			return Fail[byte](in, expected(in, want))
		}
		return Succeed(in.Advance(1), t)
	}
}

// NotToken matches any byte other than t.
func NotToken(t byte) Parser[byte] {
	want := "any byte but " + strconv.QuoteRune(rune(t))
	return func(in Input) Result[byte] {
		if in.Empty() {
			return missing[byte](in, 1)
		}
		if in.data[0] == t {
			return Fail[byte](in, expected(in, want))
		}
		return Succeed(in.Advance(1), in.data[0])
	}
}

// String matches the literal s. A partial match does not consume input: on
// mismatch the failure is reported at the start of the literal.
func String(s string) Parser[[]byte] {
	lit := []byte(s)
	want := strconv.Quote(s)
	return func(in Input) Result[[]byte] {
		n := min(len(lit), in.Len())
		if !bytes.Equal(in.data[:n], lit[:n]) {
			return Fail[[]byte](in, expected(in, want))
		}
		if n < len(lit) {
			return missing[[]byte](in, len(lit)-n)
		}
		return Succeed(in.Advance(n), in.Take(n))
	}
}

// Take matches exactly n bytes.
func Take(n int) Parser[[]byte] {
	if n < 0 {
		panic(fmt.Sprintf("parse: Take(%d)", n))
	}
	return func(in Input) Result[[]byte] {
		if in.Len() < n {
			return missing[[]byte](in, n-in.Len())
		}
		return Succeed(in.Advance(n), in.Take(n))
	}
}

// scan returns the length of the prefix of in whose bytes satisfy pred, and
// whether the scan was stopped by a byte rather than by the end of the view.
func scan(in Input, pred func(byte) bool) (int, bool) {
	for i, c := range in.data {
		if !pred(c) {
			return i, true
		}
	}
	return in.Len(), false
}

// TakeWhile matches the longest run of bytes satisfying pred, possibly empty.
// A run reaching the end of a partial input is incomplete.
func TakeWhile(pred func(byte) bool) Parser[[]byte] {
	return func(in Input) Result[[]byte] {
		n, stopped := scan(in, pred)
		if !stopped && !in.AtEnd() {
			return NeedMore[[]byte](1)
		}
		return Succeed(in.Advance(n), in.Take(n))
	}
}

// TakeWhile1 is like TakeWhile but requires at least one byte.
func TakeWhile1(pred func(byte) bool) Parser[[]byte] {
	return func(in Input) Result[[]byte] {
		if in.Empty() {
			return missing[[]byte](in, 1)
		}
		if !pred(in.data[0]) {
			return Fail[[]byte](in, expected(in, "matching byte"))
		}
		return TakeWhile(pred)(in)
	}
}

// TakeTill matches bytes up to, not including, the first byte satisfying
// pred.
func TakeTill(pred func(byte) bool) Parser[[]byte] {
	return func(in Input) Result[[]byte] {
		n, stopped := scan(in, func(c byte) bool { return !pred(c) })
		if !stopped {
			return missing[[]byte](in, 1)
		}
		return Succeed(in.Advance(n), in.Take(n))
	}
}

// SkipWhile skips the longest run of bytes satisfying pred.
func SkipWhile(pred func(byte) bool) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		n, stopped := scan(in, pred)
		if !stopped && !in.AtEnd() {
			return NeedMore[struct{}](1)
		}
		return Succeed(in.Advance(n), struct{}{})
	}
}

func takeRemainder(in Input) Result[[]byte] {
	if !in.AtEnd() {
		return NeedMore[[]byte](1)
	}
	return Succeed(in.Advance(in.Len()), in.Bytes())
}

func eof(in Input) Result[struct{}] {
	if !in.Empty() {
		return Fail[struct{}](in, expected(in, "end of input"))
	}
	if !in.AtEnd() {
		return NeedMore[struct{}](1)
	}
	return Succeed(in, struct{}{})
}
