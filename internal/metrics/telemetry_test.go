package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder(nil)

	r.Observe("cosine", 100, 2, 5*time.Millisecond, nil)
	r.Observe("cosine", 50, 1, time.Millisecond, nil)
	r.Observe("l2", 10, 0, time.Millisecond, errors.New("bad item"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.calls.WithLabelValues("cosine")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues("l2")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.errors.WithLabelValues("cosine")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues("l2")))
	assert.Equal(t, 150.0, testutil.ToFloat64(r.vectors))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.batches))
}

func TestRecorder_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.Observe("cosine", 1, 1, time.Millisecond, nil)

	n, err := testutil.GatherAndCount(reg, "vecscan_search_calls_total", "vecscan_scored_vectors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Panics(t, func() { NewRecorder(reg) }, "registering twice must fail loudly")
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Observe("cosine", 1, 1, time.Millisecond, nil)
	})
}
