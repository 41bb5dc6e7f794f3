// Package format writes parsed rules in the output formats of the nibble
// command.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/nibble/rules"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(rule rules.Rule) error
}

// New returns the encoder registered under name: "json", "line" or "text".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "text":
		return NewTextEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// TextEncoder writes rules in their source syntax, one per line.
type TextEncoder struct {
	w    io.Writer
	rule rules.Rule
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(rule rules.Rule) error {
	e.rule = rule
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.rule.String() + "\n"), nil
}
