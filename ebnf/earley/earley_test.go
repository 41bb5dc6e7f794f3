package earley

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"
)

func mustGrammar(t *testing.T, src string) ebnf.Grammar {
	t.Helper()
	g, err := ebnf.Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func TestRecognize(t *testing.T) {
	g := mustGrammar(t, `
		List    = "[" [ Item { "," Item } ] "]" .
		Item    = digit { digit } | List .
		digit   = "0" … "9" .
	`)
	r, err := New(g, "List")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input  string
		ok     bool
		offset int
	}{
		{"[]", true, 0},
		{"[1]", true, 0},
		{"[12,3,[4,[]]]", true, 0},
		{"[1,]", false, 3},
		{"[1", false, 2},
		{"x", false, 0},
		{"[1]]", false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := r.Recognize([]byte(tt.input))
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok {
				return
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if e.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", e.Offset, tt.offset)
			}
		})
	}
}

func TestNullableProductions(t *testing.T) {
	g := mustGrammar(t, `
		S = A A "x" .
		A = [ "a" ] .
	`)
	r, err := New(g, "S")
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"x", "ax", "aax"} {
		if err := r.Recognize([]byte(input)); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
	if err := r.Recognize([]byte("aaax")); err == nil {
		t.Error("aaax accepted")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(mustGrammar(t, `S = "x" .`), "T"); err == nil {
		t.Error("missing start production accepted")
	}
	if _, err := New(mustGrammar(t, `S = T .`), "S"); err == nil {
		t.Error("undefined production accepted")
	}
}
