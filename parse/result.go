package parse

import "fmt"

// Status identifies which of the three outcomes a Result holds.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusIncomplete
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Parser is a parsing function over an Input view.
type Parser[T any] func(Input) Result[T]

// Result is the outcome of running a Parser once.
//
// For a success, Rest is the remaining input and Value the produced value.
// For a failure, Rest is the position at which the parser failed and Err the
// diagnostic. For an incomplete result, Need is the minimum number of extra
// bytes required.
type Result[T any] struct {
	status Status
	rest   Input
	value  T
	err    error
	need   int
}

// Succeed returns a successful result with rest as the remaining input.
func Succeed[T any](rest Input, v T) Result[T] {
	return Result[T]{status: StatusSuccess, rest: rest, value: v}
}

// Fail returns a failure that happened at position at.
func Fail[T any](at Input, err error) Result[T] {
	return Result[T]{status: StatusFailure, rest: at, err: err}
}

// NeedMore returns an incomplete result asking for n more bytes.
func NeedMore[T any](n int) Result[T] {
	if n < 1 {
		n = 1
	}
	return Result[T]{status: StatusIncomplete, need: n}
}

func (r Result[T]) Status() Status     { return r.status }
func (r Result[T]) IsSuccess() bool    { return r.status == StatusSuccess }
func (r Result[T]) IsFailure() bool    { return r.status == StatusFailure }
func (r Result[T]) IsIncomplete() bool { return r.status == StatusIncomplete }

// Value returns the produced value. It is the zero value unless the result is
// a success.
func (r Result[T]) Value() T {
	return r.value
}

// Rest returns the remaining input of a success or the failure position of a
// failure.
func (r Result[T]) Rest() Input {
	return r.rest
}

// Err returns the diagnostic of a failure.
func (r Result[T]) Err() error {
	return r.err
}

// Need returns the number of additional bytes an incomplete result asks for.
func (r Result[T]) Need() int {
	return r.need
}

// Consumed returns how many bytes the parser moved past, measured from from,
// the view the parser was invoked on. For failures this is the number of bytes
// consumed before failing: zero means a mismatch, anything else a committed
// failure. Incomplete results consume nothing.
func (r Result[T]) Consumed(from Input) int {
	if r.status == StatusIncomplete {
		return 0
	}
	return int(r.rest.pos - from.pos)
}

// Unwrap returns the value of a success, or an error describing any other
// outcome.
func (r Result[T]) Unwrap() (T, error) {
	switch r.status {
	case StatusSuccess:
		return r.value, nil
	case StatusFailure:
		return r.value, r.err
	default:
		return r.value, &IncompleteError{Need: r.need}
	}
}

func (r Result[T]) String() string {
	switch r.status {
	case StatusSuccess:
		return fmt.Sprintf("Success(%v, %v)", r.rest, r.value)
	case StatusFailure:
		return fmt.Sprintf("Failure(%d, %v)", r.rest.pos, r.err)
	default:
		return fmt.Sprintf("Incomplete(%d)", r.need)
	}
}

// IncompleteError is returned by Result.Unwrap for incomplete results.
type IncompleteError struct {
	Need int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete input: need %d more bytes", e.Need)
}

// retype carries a non-success outcome over to another value type.
func retype[U, T any](r Result[T]) Result[U] {
	return Result[U]{status: r.status, rest: r.rest, err: r.err, need: r.need}
}
