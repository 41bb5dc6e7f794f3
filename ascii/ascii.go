// Package ascii provides character classes and small parsers for ASCII text.
package ascii

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/nibble/parse"
)

func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func IsHorizontalSpace(c byte) bool { return c == ' ' || c == '\t' }
func IsEndOfLine(c byte) bool       { return c == '\r' || c == '\n' }
func IsDigit(c byte) bool           { return c >= '0' && c <= '9' }
func IsLowercase(c byte) bool       { return c >= 'a' && c <= 'z' }
func IsUppercase(c byte) bool       { return c >= 'A' && c <= 'Z' }
func IsAlpha(c byte) bool           { return IsLowercase(c) || IsUppercase(c) }
func IsAlphanumeric(c byte) bool    { return IsAlpha(c) || IsDigit(c) }

// SkipWhitespace skips any run of whitespace, including line breaks.
var SkipWhitespace = parse.SkipWhile(IsSpace)

// EndOfLine matches "\n" or "\r\n".
var EndOfLine = parse.Label(parse.Or(parse.String("\r\n"), parse.String("\n")), "end of line")

// Decimal parses an unsigned base-10 number into T. A number too large for T
// is a failure reported after the digits.
func Decimal[T constraints.Integer]() parse.Parser[T] {
	digits := parse.Label(parse.TakeWhile1(IsDigit), "digit")
	return func(in parse.Input) parse.Result[T] {
		r := digits(in)
		if r.IsIncomplete() {
			return parse.NeedMore[T](r.Need())
		}
		if r.IsFailure() {
			return parse.Fail[T](r.Rest(), r.Err())
		}
		v, err := strconv.ParseUint(string(r.Value()), 10, 64)
		t := T(v)
		if err != nil || t < 0 || uint64(t) != v {
			return parse.Fail[T](r.Rest(), fmt.Errorf("offset %d: decimal %s overflows %T", in.Offset(), r.Value(), t))
		}
		return parse.Succeed(r.Rest(), t)
	}
}

// Signed runs p after an optional '+' or '-' and negates the value for '-'.
func Signed[T constraints.Signed](p parse.Parser[T]) parse.Parser[T] {
	sign := parse.Option(parse.Satisfy(func(c byte) bool { return c == '+' || c == '-' }), '+')
	return parse.Bind(sign, func(s byte) parse.Parser[T] {
		if s == '-' {
			return parse.Map(p, func(v T) T { return -v })
		}
		return p
	})
}
