package parse

// Seq threads the input through a series of parsers run by Get. Once a step
// does not succeed the Seq halts: later steps are skipped and the halting
// outcome becomes the result of the enclosing Sequence.
type Seq struct {
	in     Input
	halted bool
	status Status
	at     Input
	err    error
	need   int
}

// Input returns the input the next step will run on.
func (s *Seq) Input() Input {
	return s.in
}

// Halted reports whether a previous step failed or was incomplete.
func (s *Seq) Halted() bool {
	return s.halted
}

// Get runs p on the current input of s and returns its value. If s has halted
// or p does not succeed, Get returns the zero value.
func Get[T any](s *Seq, p Parser[T]) T {
	var zero T
	if s.halted {
		return zero
	}
	r := p(s.in)
	if r.status != StatusSuccess {
		s.halted = true
		s.status = r.status
		s.at = r.rest
		s.err = r.err
		s.need = r.need
		return zero
	}
	s.in = r.rest
	return r.value
}

// Sequence builds a parser from a body that runs its steps with Get. The value
// returned by body is used only if every step succeeded.
func Sequence[T any](body func(*Seq) T) Parser[T] {
	return func(in Input) Result[T] {
		s := &Seq{in: in}
		v := body(s)
		if !s.halted {
			return Succeed(s.in, v)
		}
		if s.status == StatusFailure {
			return Fail[T](s.at, s.err)
		}
		return NeedMore[T](s.need)
	}
}
