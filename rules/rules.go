// Package rules reads constraint rules, one per line:
//
//	# comments run to the end of the line
//	home  :wifi.!vpn:        local
//	home  :vpn | (cell.!roaming): remote
//
// A constraint is built from fact names with '!' (not), '.' (and) and '|'
// (or); parentheses group. Rules are parsed incrementally so large inputs
// can be streamed.
package rules

import (
	"errors"
	"io"
	"iter"

	"github.com/dhamidi/nibble/buffer"
)

// Parse parses every rule in data.
func Parse(data []byte) ([]Rule, error) {
	return collect(decode(buffer.FromBytes(data)))
}

// ReadAll parses every rule read from r.
func ReadAll(r io.Reader, opts ...buffer.Option) ([]Rule, error) {
	return collect(Decode(r, opts...))
}

// Decode returns the rules read from r one at a time. The sequence ends at
// the end of input or after yielding the first error.
func Decode(r io.Reader, opts ...buffer.Option) iter.Seq2[Rule, error] {
	return decode(buffer.NewSource(r, opts...))
}

func decode(src *buffer.Source) iter.Seq2[Rule, error] {
	return func(yield func(Rule, error) bool) {
		if _, err := buffer.Next(src, trivia); err != nil {
			if !errors.Is(err, buffer.ErrEndOfInput) {
				yield(Rule{}, err)
			}
			return
		}
		for rule, err := range buffer.All(src, ParseRule) {
			if !yield(rule, err) {
				return
			}
		}
	}
}

func collect(seq iter.Seq2[Rule, error]) ([]Rule, error) {
	var rules []Rule
	for rule, err := range seq {
		if err != nil {
			return rules, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Match returns the rules leading from source whose constraints hold for the
// given facts.
func Match(rules []Rule, source string, facts map[string]bool) []Rule {
	has := func(name string) bool { return facts[name] }
	var matched []Rule
	for _, r := range rules {
		if r.Source == source && r.Constraint.Eval(has) {
			matched = append(matched, r)
		}
	}
	return matched
}
