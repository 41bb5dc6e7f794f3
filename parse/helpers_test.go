package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func partial(s string) Input  { return NewInput([]byte(s), false) }
func complete(s string) Input { return NewInput([]byte(s), true) }

func expectSuccess[T any](t *testing.T, r Result[T], rest string, want T) {
	t.Helper()
	if !r.IsSuccess() {
		t.Fatalf("got %v, want success", r)
	}
	if got := string(r.Rest().Bytes()); got != rest {
		t.Errorf("rest = %q, want %q", got, rest)
	}
	if diff := cmp.Diff(want, r.Value()); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func expectIncomplete[T any](t *testing.T, r Result[T], need int) {
	t.Helper()
	if !r.IsIncomplete() {
		t.Fatalf("got %v, want incomplete", r)
	}
	if r.Need() != need {
		t.Errorf("need = %d, want %d", r.Need(), need)
	}
}

// expectFailure checks that r failed after consuming consumed bytes of in.
func expectFailure[T any](t *testing.T, in Input, r Result[T], consumed int) error {
	t.Helper()
	if !r.IsFailure() {
		t.Fatalf("got %v, want failure", r)
	}
	if got := r.Consumed(in); got != consumed {
		t.Errorf("consumed = %d, want %d", got, consumed)
	}
	if r.Err() == nil {
		t.Error("failure without diagnostic")
	}
	return r.Err()
}
