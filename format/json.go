package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/nibble/rules"
)

// JSONEncoder writes one JSON object per rule.
type JSONEncoder struct {
	w    io.Writer
	rule rules.Rule
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(rule rules.Rule) error {
	e.rule = rule
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	c, err := constraintToJSON(e.rule.Constraint)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonRule{
		Source:      e.rule.Source,
		Destination: e.rule.Destination,
		Constraint:  c,
	})
}

type jsonRule struct {
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Constraint  *jsonConstraint `json:"constraint"`
}

type jsonConstraint struct {
	Kind  string            `json:"kind"`
	Name  string            `json:"name,omitempty"`
	Terms []*jsonConstraint `json:"terms,omitempty"`
}

func constraintToJSON(c rules.Constraint) (*jsonConstraint, error) {
	switch c := c.(type) {
	case rules.Ident:
		return &jsonConstraint{Kind: "ident", Name: string(c)}, nil
	case rules.Not:
		x, err := constraintToJSON(c.X)
		if err != nil {
			return nil, err
		}
		return &jsonConstraint{Kind: "not", Terms: []*jsonConstraint{x}}, nil
	case rules.And:
		return termsToJSON("and", c)
	case rules.Or:
		return termsToJSON("or", c)
	default:
		return nil, fmt.Errorf("unknown constraint type %T", c)
	}
}

func termsToJSON(kind string, terms []rules.Constraint) (*jsonConstraint, error) {
	jc := &jsonConstraint{Kind: kind}
	for _, t := range terms {
		x, err := constraintToJSON(t)
		if err != nil {
			return nil, err
		}
		jc.Terms = append(jc.Terms, x)
	}
	return jc, nil
}
