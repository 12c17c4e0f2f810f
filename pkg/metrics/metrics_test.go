package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCounters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveCartOperation("add", nil)
	m.ObserveCartOperation("add", nil)
	m.ObserveCartOperation("add", errors.New("boom"))
	m.ObserveCheckout(nil)
	m.ObserveSlots(8)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CartOperationsTotal.WithLabelValues("add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CartOperationsTotal.WithLabelValues("add", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckoutsTotal.WithLabelValues("ok")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.SlotsDerivedTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCartOperation("clear", nil)
		m.ObserveCheckout(errors.New("boom"))
		m.ObserveSlots(3)
	})
}
