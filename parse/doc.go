// Package parse provides incremental parser combinators over byte input.
//
// # Overview
//
// A Parser is a plain function from an Input view to a Result. Every result is
// exactly one of three outcomes:
//
//	┌─────────────┐     ┌──────────────────────────────┐
//	│   Input     │────▶│ Success(rest, value)          │
//	│  (window,   │     │ Failure(err, failure offset)  │
//	│  end flag)  │     │ Incomplete(need ≥ 1)          │
//	└─────────────┘     └──────────────────────────────┘
//
// Incomplete is not an error. It tells the caller that the bytes seen so far
// are a valid prefix and at least Need more bytes are required before the
// parser can decide. The buffer package uses it to grow its buffer and replay
// the same parser against the larger input.
//
// # Commit discipline
//
// A failure records where it happened. Result.Consumed reports how many bytes
// the parser got through before failing, relative to the view it was given.
//
//   - Consumed == 0 is a mismatch: "this does not apply here". Or tries the
//     next branch, Option yields its default and the repetition combinators
//     stop.
//   - Consumed > 0 is committed: a partial match went wrong. Every combinator
//     propagates it unchanged.
//
// Use Attempt to opt back into backtracking for a specific sub-parser.
//
// # Repetition
//
// Many, Many1, Count, SkipMany, SkipMany1, SepBy, SepBy1 and ManyTill are all
// built on Repeat and RepeatTill, which take a Bound and an Accumulator:
//
//	p := parse.Repeat(parse.Token('a'), parse.Range(2, 4), parse.Counter[byte]())
//
// When a repeated parser reports Incomplete on input that is flagged as the
// end, no more data can arrive, so the engine reads it as a mismatch.
//
// # Sequencing
//
// Sequence runs a body that pulls values out of sub-parsers with Get. The first
// step that does not succeed halts the sequence and becomes its result:
//
//	pair := parse.Sequence(func(s *parse.Seq) [2]byte {
//	    a := parse.Get(s, parse.Any)
//	    parse.Get(s, parse.Token(','))
//	    b := parse.Get(s, parse.Any)
//	    return [2]byte{a, b}
//	})
//
// Parsers must be pure functions of their input: the streaming driver replays
// them from the same start position whenever it grows the buffer.
package parse
