package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrRetry reports that the buffer grew and the same parser should be run
	// again. It is not a failure.
	ErrRetry = errors.New("buffer: grew, retry parse")

	// ErrEndOfInput is returned once every byte of the source has been
	// consumed.
	ErrEndOfInput = errors.New("buffer: end of input")

	// ErrBufferFull is returned when a parser needs more unconsumed bytes than
	// the configured maximum buffer size allows.
	ErrBufferFull = errors.New("buffer: buffer full")

	// ErrNoProgress is reported by All when the parser succeeds without
	// consuming anything, which would otherwise repeat forever.
	ErrNoProgress = errors.New("buffer: parser made no progress")
)

// ParseError is a terminal parse failure at an absolute offset in the stream.
type ParseError struct {
	Name   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadError wraps an error returned by the underlying reader.
type ReadError struct {
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read at offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
