package rules

import (
	"bytes"
	_ "embed"

	"golang.org/x/exp/ebnf"
)

// GrammarSource is the EBNF description of the rule language.
//
//go:embed grammar.ebnf
var GrammarSource []byte

// Start is the start production of GrammarSource.
const Start = "Rules"

// Grammar parses and verifies GrammarSource.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(GrammarSource))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, err
	}
	return g, nil
}
