package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/nibble/rules"
)

// LineEncoder writes one tab separated line per rule: source, destination,
// constraint and the sorted facts the constraint mentions.
type LineEncoder struct {
	w    io.Writer
	rule rules.Rule
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(rule rules.Rule) error {
	e.rule = rule
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.rule

	fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n",
		r.Source,
		r.Destination,
		r.Constraint.String(),
		strings.Join(e.facts(), ","),
	)

	return []byte(sb.String()), nil
}

func (e *LineEncoder) facts() []string {
	seen := map[string]bool{}
	var walk func(rules.Constraint)
	walk = func(c rules.Constraint) {
		switch c := c.(type) {
		case rules.Ident:
			seen[string(c)] = true
		case rules.Not:
			walk(c.X)
		case rules.And:
			for _, t := range c {
				walk(t)
			}
		case rules.Or:
			for _, t := range c {
				walk(t)
			}
		}
	}
	walk(e.rule.Constraint)

	facts := make([]string, 0, len(seen))
	for f := range seen {
		facts = append(facts, f)
	}
	sort.Strings(facts)
	return facts
}
