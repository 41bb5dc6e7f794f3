// Package buffer drives parsers over data arriving from an io.Reader.
//
// A Source owns a growable buffer. Parse runs a parser against the unconsumed
// bytes; when the parser reports it needs more input the Source reads at least
// that much and asks the caller to try again:
//
//	src := buffer.NewSource(r)
//	for {
//		v, err := buffer.Parse(src, p)
//		if errors.Is(err, buffer.ErrRetry) {
//			continue
//		}
//		...
//	}
//
// Next hides the retry loop and All iterates over successive values.
//
// Bytes handed to a parser are never written again. New data is read into
// buffer capacity no view has seen, or into a fresh array when the buffer
// must grow, so values returned by earlier parses stay valid.
package buffer

import (
	"errors"
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/nibble/parse"
)

// Source is a buffered byte stream that parsers run against. A Source is not
// safe for concurrent use.
type Source struct {
	r      io.Reader
	buf    []byte
	cursor int
	base   int64
	eof    bool

	chunk   int
	maxSize int
	name    string
	log     commonlog.Logger
	metrics *Metrics
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader, opts ...Option) *Source {
	s := &Source{
		r:     r,
		chunk: DefaultChunkSize,
		log:   commonlog.GetLogger("nibble.buffer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromBytes returns a Source over b that never reads. b must not be modified
// while the Source is in use.
func FromBytes(b []byte, opts ...Option) *Source {
	s := NewSource(nil, opts...)
	s.buf = b[:len(b):len(b)]
	s.eof = true
	return s
}

// Offset returns the absolute stream offset of the next unconsumed byte.
func (s *Source) Offset() int64 {
	return s.base + int64(s.cursor)
}

// Buffered returns the number of bytes read but not yet consumed.
func (s *Source) Buffered() int {
	return len(s.buf) - s.cursor
}

// Exhausted reports whether the underlying reader has reached end of file.
func (s *Source) Exhausted() bool {
	return s.eof
}

func (s *Source) input() parse.Input {
	return parse.NewInputAt(s.buf[s.cursor:], s.Offset(), s.eof)
}

// fill reads at least need more bytes unless the reader ends first.
func (s *Source) fill(need int) error {
	if s.eof {
		return nil
	}

	live := s.Buffered()
	want := max(need, s.chunk)
	if s.maxSize > 0 {
		if live+need > s.maxSize {
			return fmt.Errorf("%w: %d bytes buffered, %d more needed, limit %d", ErrBufferFull, live, need, s.maxSize)
		}
		want = min(want, s.maxSize-live)
	}
	s.reserve(want)

	start := len(s.buf)
	n, err := io.ReadAtLeast(s.r, s.buf[start:start+want], need)
	s.buf = s.buf[:start+n]
	s.metrics.read(n)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
		s.log.Debugf("%s: reader exhausted at offset %d", s.label(), s.base+int64(len(s.buf)))
	default:
		return &ReadError{Offset: s.base + int64(len(s.buf)), Err: err}
	}
	return nil
}

// reserve makes room for n bytes after the end of the buffer. The unconsumed
// bytes move to a new array; the old one is left untouched.
func (s *Source) reserve(n int) {
	if cap(s.buf)-len(s.buf) >= n {
		return
	}

	live := s.buf[s.cursor:]
	size := max(2*len(live), len(live)+n)
	if s.maxSize > 0 {
		size = min(size, max(s.maxSize, len(live)+n))
	}
	next := make([]byte, len(live), size)
	copy(next, live)

	s.base += int64(s.cursor)
	s.cursor = 0
	s.buf = next

	s.metrics.grow(size)
	s.log.Debugf("%s: buffer grown to %d bytes at offset %d", s.label(), size, s.base)
}

func (s *Source) label() string {
	if s.name == "" {
		return "source"
	}
	return s.name
}
