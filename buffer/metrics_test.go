package buffer

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dhamidi/nibble/parse"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	const text = "one\ntwo\n"
	s := NewSource(iotest.OneByteReader(strings.NewReader(text)), WithChunkSize(2), WithMetrics(m))
	got, err := collect(t, s, line)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines", len(got))
	}

	tests := []struct {
		name      string
		collector prometheus.Collector
		want      float64
	}{
		{"bytes read", m.bytesRead, float64(len(text))},
		{"successes", m.attempts.WithLabelValues(resultSuccess), 2},
		{"end", m.attempts.WithLabelValues(resultEnd), 1},
		{"failures", m.attempts.WithLabelValues(resultFailure), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.collector); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if testutil.ToFloat64(m.attempts.WithLabelValues(resultRetry)) == 0 {
		t.Error("no retries recorded")
	}
	if testutil.ToFloat64(m.grows) == 0 || testutil.ToFloat64(m.capacity) == 0 {
		t.Error("no growth recorded")
	}
	n, err := testutil.GatherAndCount(registry, "nibble_buffer_bytes_read_total", "nibble_buffer_grows_total")
	if err != nil || n != 2 {
		t.Errorf("gathered %d series (%v), want 2", n, err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.attempt(resultSuccess)
	m.read(10)
	m.grow(10)

	if _, err := Next(FromBytes([]byte("x")), parse.Any); err != nil {
		t.Fatal(err)
	}
}
