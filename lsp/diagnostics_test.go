package lsp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestPosition(t *testing.T) {
	text := []byte("ab\ncé\n😀x")
	tests := []struct {
		offset int64
		want   protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 0, Character: 2}},
		{3, protocol.Position{Line: 1, Character: 0}},
		{6, protocol.Position{Line: 1, Character: 2}},
		{7, protocol.Position{Line: 2, Character: 0}},
		{11, protocol.Position{Line: 2, Character: 2}},
		{100, protocol.Position{Line: 2, Character: 3}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Position(text, tt.offset)); diff != "" {
			t.Errorf("offset %d (-want +got):\n%s", tt.offset, diff)
		}
	}
}

func TestDiagnose(t *testing.T) {
	if got := Diagnose([]byte("a :b: c\n")); got == nil || len(got) != 0 {
		t.Errorf("valid file: got %v, want an empty non-nil slice", got)
	}

	got := Diagnose([]byte("a :b: c\nd :(e: f\n"))
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics", len(got))
	}
	d := got[0]
	want := protocol.Position{Line: 1, Character: 5}
	if diff := cmp.Diff(want, d.Range.Start); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", d.Severity)
	}
	if !strings.Contains(d.Message, "expected ')'") {
		t.Errorf("message = %q", d.Message)
	}
}
