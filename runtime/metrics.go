package runtime

// metrics.go mirrors the teacher's dual noop/Prometheus sink shape
// (pkg/metrics.go): the hot dispatch path in object/* never pays for
// metric collection unless a Registry was supplied via WithMetrics.

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metricsSink is the internal abstraction runtime operations report
// through; object/* itself stays metrics-free.
type metricsSink interface {
	incAlloc(tag string)
	incDealloc(tag string)
	incHashCalls()
	incCompareCalls()
	setInterned(n int)
}

type noopMetrics struct{}

func (noopMetrics) incAlloc(string)    {}
func (noopMetrics) incDealloc(string)  {}
func (noopMetrics) incHashCalls()      {}
func (noopMetrics) incCompareCalls()   {}
func (noopMetrics) setInterned(int)    {}

type promMetrics struct {
	allocs    *prometheus.CounterVec
	deallocs  *prometheus.CounterVec
	hashCalls prometheus.Counter
	cmpCalls  prometheus.Counter
	interned  prometheus.Gauge
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	label := []string{"tag"}
	pm := &promMetrics{
		allocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objrt",
			Name:      "objects_allocated_total",
			Help:      "Number of objects constructed, by type tag.",
		}, label),
		deallocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objrt",
			Name:      "objects_deallocated_total",
			Help:      "Number of objects released at refcount zero, by type tag.",
		}, label),
		hashCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "objrt",
			Name:      "hash_calls_total",
			Help:      "Number of Hash/CurrentHash dispatches.",
		}),
		cmpCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "objrt",
			Name:      "compare_calls_total",
			Help:      "Number of comparison dispatches.",
		}),
		interned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "objrt",
			Name:      "interned_strings",
			Help:      "Number of distinct interned strings live.",
		}),
	}
	reg.MustRegister(pm.allocs, pm.deallocs, pm.hashCalls, pm.cmpCalls, pm.interned)
	return pm
}

func (m *promMetrics) incAlloc(tag string)   { m.allocs.WithLabelValues(tag).Inc() }
func (m *promMetrics) incDealloc(tag string) { m.deallocs.WithLabelValues(tag).Inc() }
func (m *promMetrics) incHashCalls()         { m.hashCalls.Inc() }
func (m *promMetrics) incCompareCalls()      { m.cmpCalls.Inc() }
func (m *promMetrics) setInterned(n int)     { m.interned.Set(float64(n)) }

func newMetricsSink(reg *prometheus.Registry) metricsSink {
	if reg == nil {
		return noopMetrics{}
	}
	return newPromMetrics(reg)
}
