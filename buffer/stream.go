package buffer

import (
	"errors"
	"fmt"
	"iter"

	"github.com/dhamidi/nibble/parse"
)

// Parse runs p once against the unconsumed bytes of s.
//
// On success the consumed bytes are committed and the value returned. A
// failure becomes a *ParseError. When p needs more input, Parse reads at
// least as many bytes as p asked for and returns ErrRetry; the caller should
// run the same parser again. Once the reader is exhausted an incomplete
// result becomes a *ParseError wrapping parse.ErrUnexpectedEOF, and an empty
// buffer yields ErrEndOfInput.
func Parse[T any](s *Source, p parse.Parser[T]) (T, error) {
	var zero T

	if s.Buffered() == 0 && !s.eof {
		if err := s.fill(1); err != nil {
			s.metrics.attempt(resultError)
			return zero, err
		}
	}
	if s.Buffered() == 0 && s.eof {
		s.metrics.attempt(resultEnd)
		return zero, ErrEndOfInput
	}

	in := s.input()
	r := p(in)

	switch r.Status() {
	case parse.StatusSuccess:
		s.cursor += r.Consumed(in)
		s.metrics.attempt(resultSuccess)
		return r.Value(), nil

	case parse.StatusFailure:
		s.metrics.attempt(resultFailure)
		s.log.Debugf("%s: parse failed: %v", s.label(), r.Err())
		return zero, &ParseError{Name: s.name, Offset: r.Rest().Offset(), Err: r.Err()}
	}

	if s.eof {
		s.metrics.attempt(resultFailure)
		end := in.Offset() + int64(in.Len())
		return zero, &ParseError{
			Name:   s.name,
			Offset: end,
			Err:    fmt.Errorf("offset %d: %w", end, parse.ErrUnexpectedEOF),
		}
	}

	if err := s.fill(r.Need()); err != nil {
		s.metrics.attempt(resultError)
		return zero, err
	}
	s.metrics.attempt(resultRetry)
	return zero, ErrRetry
}

// Next is Parse with the retries absorbed: it returns a value or a terminal
// error.
func Next[T any](s *Source, p parse.Parser[T]) (T, error) {
	for {
		v, err := Parse(s, p)
		if !errors.Is(err, ErrRetry) {
			return v, err
		}
	}
}

// All parses successive values from s until end of input. A terminal error is
// yielded once and ends the sequence; reaching the end of input ends it
// without an error.
func All[T any](s *Source, p parse.Parser[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for {
			start := s.Offset()
			v, err := Next(s, p)
			if errors.Is(err, ErrEndOfInput) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
			if s.Offset() == start {
				yield(zero, fmt.Errorf("%w at offset %d", ErrNoProgress, start))
				return
			}
		}
	}
}
