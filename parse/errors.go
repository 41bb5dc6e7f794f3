package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is the diagnostic for input that ended before a parser
	// could finish.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrEndNotFound is reported by RepeatTill when the maximum number of
	// repetitions was reached before the end parser matched.
	ErrEndNotFound = errors.New("end parser did not match before repetition limit")
)

// ExpectedError is the diagnostic for a byte that did not match.
type ExpectedError struct {
	Offset int64
	Want   string
	Got    byte
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, got %q", e.Offset, e.Want, e.Got)
}

func expected(in Input, want string) error {
	return &ExpectedError{Offset: in.Offset(), Want: want, Got: in.data[0]}
}

func unexpectedEOF(in Input) error {
	return fmt.Errorf("offset %d: %w", in.Offset()+int64(in.Len()), ErrUnexpectedEOF)
}
