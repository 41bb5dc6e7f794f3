package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/nibble/rules"
)

var rule = rules.Rule{
	Source:      "home",
	Destination: "remote",
	Constraint:  rules.Or{rules.Ident("vpn"), rules.And{rules.Ident("cell"), rules.Not{X: rules.Ident("roaming")}}},
}

func TestEncoders(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"text", "home :vpn | cell.!roaming: remote\n"},
		{"line", "home\tremote\tvpn | cell.!roaming\tcell,roaming,vpn\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := New(tt.format, &buf)
			if err != nil {
				t.Fatal(err)
			}
			if err := enc.Encode(rule); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(rule); err != nil {
		t.Fatal(err)
	}

	var got jsonRule
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := jsonRule{
		Source:      "home",
		Destination: "remote",
		Constraint: &jsonConstraint{Kind: "or", Terms: []*jsonConstraint{
			{Kind: "ident", Name: "vpn"},
			{Kind: "and", Terms: []*jsonConstraint{
				{Kind: "ident", Name: "cell"},
				{Kind: "not", Terms: []*jsonConstraint{{Kind: "ident", Name: "roaming"}}},
			}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := New("yaml", &bytes.Buffer{}); err == nil {
		t.Error("expected an error")
	}
}
