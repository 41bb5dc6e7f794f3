package parse

import "fmt"

// Input is an immutable window over a byte buffer plus an end-of-input flag.
//
// Input values are cheap to copy; copying never copies the underlying bytes.
// Advancing produces a new Input and leaves the original usable, so
// backtracking is just a matter of keeping the older value around.
type Input struct {
	data []byte
	pos  int64
	end  bool
}

// NewInput returns a view over data starting at offset 0. end reports whether
// data is everything there is; when false more bytes may still arrive.
func NewInput(data []byte, end bool) Input {
	return NewInputAt(data, 0, end)
}

// NewInputAt is like NewInput but places data[0] at the absolute stream
// offset pos, so diagnostics report positions in the whole stream.
func NewInputAt(data []byte, pos int64, end bool) Input {
	return Input{data: data[:len(data):len(data)], pos: pos, end: end}
}

// Bytes returns the bytes covered by the view. The returned slice must not be
// modified.
func (in Input) Bytes() []byte {
	return in.data
}

// Len returns the number of bytes covered by the view.
func (in Input) Len() int {
	return len(in.data)
}

// Empty reports whether the view covers no bytes.
func (in Input) Empty() bool {
	return len(in.data) == 0
}

// Offset returns the absolute stream offset of the first byte of the view.
func (in Input) Offset() int64 {
	return in.pos
}

// AtEnd reports whether the view is flagged as the end of input.
func (in Input) AtEnd() bool {
	return in.end
}

// Advance returns the view with the first n bytes removed.
func (in Input) Advance(n int) Input {
	if n < 0 || n > len(in.data) {
		panic(fmt.Sprintf("parse: advance %d out of range [0:%d]", n, len(in.data)))
	}
	return Input{data: in.data[n:], pos: in.pos + int64(n), end: in.end}
}

// Take returns the first n bytes of the view.
func (in Input) Take(n int) []byte {
	return in.data[:n:n]
}

func (in Input) String() string {
	if in.end {
		return fmt.Sprintf("%d:%q (end)", in.pos, in.data)
	}
	return fmt.Sprintf("%d:%q", in.pos, in.data)
}
