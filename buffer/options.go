package buffer

import "github.com/tliron/commonlog"

// DefaultChunkSize is the smallest read a Source issues when it grows.
const DefaultChunkSize = 4096

type Option func(*Source)

// WithChunkSize sets the minimum number of bytes requested per read.
// Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.chunk = n
		}
	}
}

// WithMaxBufferSize caps the number of unconsumed bytes the Source will hold.
// Zero means no limit.
func WithMaxBufferSize(n int) Option {
	return func(s *Source) {
		s.maxSize = n
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Source) {
		s.metrics = m
	}
}

// WithName sets the name used to prefix parse errors, usually a file name.
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}
